package frame

import (
	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/mesh"
)

//go:generate go tool stringer -type=AcquireStatus,State,Outcome -output=enums_string.go
//go:generate go tool stringer -type=PresentMode -trimprefix=PresentMode -output=presentmode_string.go

// TextureFormat is a backend specific texture format value.
type TextureFormat uint32

// AlphaMode is a backend specific composite alpha mode value.
type AlphaMode uint32

type PresentMode uint8

const (
	PresentModeFifo PresentMode = iota
	PresentModeMailbox
	PresentModeImmediate
)

// SurfaceConfig describes how the presentation surface is configured.
type SurfaceConfig struct {
	Format      TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// AcquireStatus is the result of requesting the next surface texture.
type AcquireStatus uint8

const (
	AcquireSuccess AcquireStatus = iota

	// the surface did not provide a texture in time, skip this frame
	AcquireTimeout

	// the surface changed and must be configured again
	AcquireOutdated

	// the surface was lost and must be configured again
	AcquireLost

	AcquireOutOfMemory
)

// Color is a linear rgba color.
type Color [4]float32

// RenderPass is everything the device needs to record the single
// render pass of a frame.
type RenderPass struct {
	ClearColor Color

	// bind the camera uniform at group 0
	BindCamera bool

	Draw mesh.DrawCall
}

// Frame is a surface texture acquired from the device.
type Frame interface {
	// Discard releases the frame without presenting it.
	Discard()
}

// Commands is a recorded command buffer, ready for submission.
type Commands interface {
	Release()
}

// Device is the set of operations the renderer needs from a
// graphics backend.
type Device interface {
	// PreferredConfig returns the surface configuration chosen
	// from the capabilities of the surface.
	PreferredConfig(width, height uint32) SurfaceConfig

	Configure(config SurfaceConfig) error
	AcquireFrame() (Frame, AcquireStatus)
	WriteCamera(uniform camera.Uniform) error
	Encode(frame Frame, pass RenderPass) (Commands, error)
	Submit(cmds Commands) error
	Present(frame Frame) error
}
