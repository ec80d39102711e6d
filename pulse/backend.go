package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/frame"
	"github.com/oliverbestmann/pentagon/mesh"
)

type BackendOptions struct {
	PresentMode   frame.PresentMode
	CullBackFaces bool

	Mesh mesh.Mesh

	// create the camera uniform and bind it at group 0
	Camera bool
}

// Backend implements frame.Device on top of a webgpu Context.
type Backend struct {
	ctx *Context

	alphaMode   frame.AlphaMode
	presentMode frame.PresentMode

	pipelines  *PipelineCache[PipelineDescriptor]
	descriptor PipelineDescriptor

	mesh   *GpuMesh
	camera *CameraBuffer
}

var _ frame.Device = (*Backend)(nil)

// NewBackend builds the pipeline for the preferred surface format and
// uploads the mesh. The pipeline is not rebuilt on resize.
func NewBackend(ctx *Context, opts BackendOptions) (b *Backend, err error) {
	b = &Backend{
		ctx:       ctx,
		pipelines: NewPipelineCache[PipelineDescriptor](ctx),
	}

	defer func() {
		if err != nil {
			b.Release()
			b = nil
		}
	}()

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	b.alphaMode = frame.AlphaMode(first(caps.AlphaModes))
	b.presentMode = choosePresentMode(caps.PresentModes, opts.PresentMode)

	b.descriptor = DefaultPipeline(chooseFormat(caps.Formats), opts.CullBackFaces)

	pipeline, err := b.pipelines.Get(b.descriptor)
	if err != nil {
		return b, err
	}

	b.mesh, err = NewGpuMesh(ctx, opts.Mesh)
	if err != nil {
		return b, fmt.Errorf("upload mesh: %w", err)
	}

	if opts.Camera {
		b.camera, err = NewCameraBuffer(ctx, pipeline.GetBindGroupLayout(0))
		if err != nil {
			return b, err
		}
	}

	return b, nil
}

func (b *Backend) PreferredConfig(width, height uint32) frame.SurfaceConfig {
	return frame.SurfaceConfig{
		Format:      frame.TextureFormat(b.descriptor.TargetFormat),
		Width:       width,
		Height:      height,
		PresentMode: b.presentMode,
		AlphaMode:   b.alphaMode,
	}
}

func (b *Backend) Configure(config frame.SurfaceConfig) error {
	if config.Width == 0 || config.Height == 0 {
		return fmt.Errorf("%w: %dx%d", frame.ErrInvalidSize, config.Width, config.Height)
	}

	b.ctx.Surface.Configure(b.ctx.Adapter, b.ctx.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormat(config.Format),
		Width:       config.Width,
		Height:      config.Height,
		PresentMode: wgpuPresentMode(config.PresentMode),
		AlphaMode:   wgpu.CompositeAlphaMode(config.AlphaMode),
	})

	return nil
}

// AcquireFrame requests the next surface texture.
//
// GetCurrentTexture of cogentcore/webgpu does not expose the status of the
// acquired surface texture, it only reports validation errors. A timeout,
// outdated or lost surface is only detected if the binding surfaces it as
// an error. Otherwise the texture is returned as if acquisition succeeded.
func (b *Backend) AcquireFrame() (frame.Frame, frame.AcquireStatus) {
	texture, err := b.ctx.Surface.GetCurrentTexture()
	if status := classifyAcquireError(err); status != frame.AcquireSuccess {
		if texture != nil {
			texture.Release()
		}

		return nil, status
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, classifyAcquireError(err)
	}

	return &surfaceFrame{texture: texture, view: view}, frame.AcquireSuccess
}

func (b *Backend) WriteCamera(uniform camera.Uniform) error {
	if b.camera == nil {
		return errors.New("backend has no camera buffer")
	}

	return b.camera.Write(uniform)
}

type commands struct {
	buffer *wgpu.CommandBuffer
}

func (c *commands) Release() {
	if c.buffer != nil {
		c.buffer.Release()
		c.buffer = nil
	}
}

func (b *Backend) Encode(target frame.Frame, pass frame.RenderPass) (frame.Commands, error) {
	sf, ok := target.(*surfaceFrame)
	if !ok || sf.view == nil {
		return nil, fmt.Errorf("frame %T was not acquired from this backend", target)
	}

	pipeline, err := b.pipelines.Get(b.descriptor)
	if err != nil {
		return nil, err
	}

	encoder, err := b.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Pentagon.Frame",
	})

	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Pentagon.RenderPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    sf.view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(pass.ClearColor[0]),
					G: float64(pass.ClearColor[1]),
					B: float64(pass.ClearColor[2]),
					A: float64(pass.ClearColor[3]),
				},
			},
		},
	})

	passGuard := NewReleaseGuard(rp)
	defer passGuard.Release()

	rp.SetPipeline(pipeline.Pipeline)

	if pass.BindCamera && b.camera != nil {
		rp.SetBindGroup(0, b.camera.BindGroup, nil)
	}

	b.mesh.Bind(rp, pass.Draw)

	if err := rp.End(); err != nil {
		return nil, fmt.Errorf("end render pass: %w", err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	buf, err := encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Pentagon.Frame"})
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}

	return &commands{buffer: buf}, nil
}

func (b *Backend) Submit(cmds frame.Commands) error {
	c, ok := cmds.(*commands)
	if !ok || c.buffer == nil {
		return fmt.Errorf("commands %T were not recorded by this backend", cmds)
	}

	b.ctx.Submit(c.buffer)

	return nil
}

func (b *Backend) Present(target frame.Frame) error {
	sf, ok := target.(*surfaceFrame)
	if !ok || sf.texture == nil {
		return fmt.Errorf("frame %T was not acquired from this backend", target)
	}

	b.ctx.Surface.Present()

	// the texture must stay alive until after presenting
	sf.Discard()

	return nil
}

// Release frees the resources of the backend in reverse order of creation.
// The Context is owned by the caller.
func (b *Backend) Release() {
	if b.camera != nil {
		b.camera.Release()
		b.camera = nil
	}

	if b.mesh != nil {
		b.mesh.Release()
		b.mesh = nil
	}

	b.pipelines.Purge()
}
