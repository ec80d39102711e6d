package glm

import "math"

// Perspective builds a right handed perspective projection that maps view space
// depth into the clip range [-1, 1]. Combine with DepthRemap for apis
// that expect depth in [0, 1].
func Perspective[T float](fovY Rad, aspect, near, far T) Mat4[T] {
	f := T(1 / math.Tan(float64(fovY*0.5)))

	return Mat4Of([4][4]T{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, (2 * far * near) / (near - far), 0},
	})
}

// DepthRemap maps clip space depth from [-1, 1] to [0, 1] using z' = 0.5z + 0.5w.
// x, y and w are left untouched.
func DepthRemap[T float]() Mat4[T] {
	return Mat4Of([4][4]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0.5, 0},
		{0, 0, 0.5, 1},
	})
}

// LookAt builds a right handed view matrix looking from eye towards center.
func LookAt[T float](eye, center, up Vec3[T]) Mat4[T] {
	f := (center.Sub(eye)).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4Of([4][4]T{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-eye.Dot(s), -eye.Dot(u), eye.Dot(f), 1},
	})
}

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}
