package glm

import "golang.org/x/mobile/exp/f32"

// sincos evaluates in float32, matrices are uploaded as float32 anyway.
func sincos(angle Rad) (sin, cos float32) {
	a := float32(angle)
	return f32.Sin(a), f32.Cos(a)
}

// RotationYMat4 rotates counter clockwise around the y axis
// when looking down from positive y.
func RotationYMat4[T numeric](angle Rad) Mat4[T] {
	fs, fc := sincos(angle)
	s, c := T(fs), T(fc)

	return Mat4Of([4][4]T{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	})
}
