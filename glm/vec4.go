package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

// PerspectiveDivide divides x, y and z by w, turning a clip space
// position into normalized device coordinates.
func (lhs Vec4[T]) PerspectiveDivide() Vec3[T] {
	return lhs.Truncate().MulScalar(1 / lhs[3])
}

