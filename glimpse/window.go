// Package glimpse provides the native window the frames are presented to.
package glimpse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/frame"
)

type Window interface {
	frame.EventSource

	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string
}
