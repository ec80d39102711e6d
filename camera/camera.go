// Package camera computes the view projection transform that is uploaded
// into the uniform at binding 0 of the pentagon shader.
package camera

import (
	"structs"
	"unsafe"

	"github.com/oliverbestmann/pentagon/glm"
)

// State holds the inputs of the view projection matrix.
type State struct {
	Eye    glm.Vec3f
	Target glm.Vec3f
	Up     glm.Vec3f

	AspectRatio float32

	// vertical field of view in degrees
	FovY float32

	Near float32
	Far  float32
}

// Default returns the camera used by the demo: looking at the origin
// from slightly above.
func Default(width, height uint32) State {
	return State{
		Eye:         glm.Vec3f{0, 1, 3},
		Target:      glm.Vec3f{0, 0, 0},
		Up:          glm.Vec3f{0, 1, 0},
		AspectRatio: AspectRatio(width, height),
		FovY:        45,
		Near:        0.1,
		Far:         100,
	}
}

// AspectRatio returns width/height, or 1 if height is zero.
func AspectRatio(width, height uint32) float32 {
	if height == 0 {
		return 1
	}

	return float32(width) / float32(height)
}

// BuildViewProjection computes DepthRemap * Projection * View. The result
// maps the view frustum onto clip space with depth in [0, 1].
func (s State) BuildViewProjection() glm.Mat4f {
	view := glm.LookAt(s.Eye, s.Target, s.Up)

	proj := glm.Perspective(
		glm.DegToRad(s.FovY),
		s.AspectRatio,
		s.Near,
		s.Far,
	)

	return glm.DepthRemap[float32]().Mul(proj).Mul(view)
}

// Orbit returns a copy of the state with the eye rotated by angle
// around the target, about the y axis.
func (s State) Orbit(angle glm.Rad) State {
	offset := s.Eye.Sub(s.Target)
	rotated := glm.RotationYMat4[float32](angle).TransformPoint(offset).Truncate()
	s.Eye = s.Target.Add(rotated)
	return s
}

// Uniform is the host side mirror of the shader's camera uniform.
type Uniform struct {
	_ structs.HostLayout

	ViewProjection glm.Mat4f
}

// UniformOf computes the uniform for the given camera state.
func UniformOf(s State) Uniform {
	return Uniform{ViewProjection: s.BuildViewProjection()}
}

// UniformSize is the size of the uniform buffer in bytes.
const UniformSize = uint64(unsafe.Sizeof(Uniform{}))

// Bytes returns the raw memory of the uniform, ready to be written
// into a gpu buffer.
func (u *Uniform) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), UniformSize)
}
