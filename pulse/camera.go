package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/camera"
)

// CameraBuffer is the uniform buffer holding the view projection matrix,
// bound at group 0 binding 0.
type CameraBuffer struct {
	queue     *wgpu.Queue
	buffer    *wgpu.Buffer
	BindGroup *wgpu.BindGroup
}

func NewCameraBuffer(ctx *Context, layout *wgpu.BindGroupLayout) (*CameraBuffer, error) {
	var initial camera.Uniform

	buffer, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Camera.Uniform",
		Contents: initial.Bytes(),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})

	if err != nil {
		return nil, fmt.Errorf("create camera buffer: %w", err)
	}

	bufferGuard := NewReleaseGuard(buffer)
	defer bufferGuard.Release()

	bindGroup, err := ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera.BindGroup",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buffer,
				Offset:  0,
				Size:    camera.UniformSize,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create camera bind group: %w", err)
	}

	bufferGuard.Keep()

	return &CameraBuffer{queue: ctx.Queue, buffer: buffer, BindGroup: bindGroup}, nil
}

// Write uploads the uniform. The queue orders the write before any
// command buffer submitted afterwards.
func (c *CameraBuffer) Write(uniform camera.Uniform) error {
	if err := c.queue.WriteBuffer(c.buffer, 0, uniform.Bytes()); err != nil {
		return fmt.Errorf("write camera buffer: %w", err)
	}

	return nil
}

func (c *CameraBuffer) Release() {
	if c.BindGroup != nil {
		c.BindGroup.Release()
		c.BindGroup = nil
	}

	if c.buffer != nil {
		c.buffer.Release()
		c.buffer = nil
	}
}
