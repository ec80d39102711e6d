// Package frame implements the per frame protocol of the renderer:
// configuring the presentation surface, acquiring a frame, recording
// and submitting the render pass and presenting the result.
package frame

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/mesh"
)

// State is the position of the renderer within a frame.
type State uint8

const (
	StateIdle State = iota
	StateSurfaceStale
	StateSurfaceReady
	StateFrameAcquired
	StateRecordingPass
	StateSubmitted
	StatePresented
)

// Outcome describes how a call to Draw ended if it did not fail.
type Outcome uint8

const (
	OutcomePresented Outcome = iota
	OutcomeSkippedTimeout
	OutcomeSkippedSurfaceLost
	OutcomeSkippedRecording
)

type Options struct {
	Surface SurfaceConfig

	// camera to upload into the uniform buffer, nil if the
	// pipeline does not use a camera
	Camera *camera.State

	ClearColor Color
	Draw       mesh.DrawCall
}

type Renderer struct {
	dev     Device
	surface *Surface

	camera      *camera.State
	cameraDirty bool

	clearColor Color
	draw       mesh.DrawCall

	state State
	stats Stats
}

// NewRenderer configures the surface and uploads the initial camera.
func NewRenderer(dev Device, opts Options) (*Renderer, error) {
	surface, err := NewSurface(opts.Surface)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	r := &Renderer{
		dev:        dev,
		surface:    surface,
		clearColor: opts.ClearColor,
		draw:       opts.Draw,
		state:      StateSurfaceStale,
	}

	if opts.Camera != nil {
		cam := *opts.Camera
		cam.AspectRatio = camera.AspectRatio(opts.Surface.Width, opts.Surface.Height)

		r.camera = &cam
		r.cameraDirty = true
	}

	if err := r.surface.Configure(dev); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	if err := r.uploadCamera(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	r.state = StateIdle

	return r, nil
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) SurfaceConfig() SurfaceConfig {
	return r.surface.Config()
}

// Camera returns a copy of the current camera state.
func (r *Renderer) Camera() (camera.State, bool) {
	if r.camera == nil {
		return camera.State{}, false
	}

	return *r.camera, true
}

// Resize records the new surface size. The surface is configured at the
// start of the next Draw, no matter how often Resize was called before.
func (r *Renderer) Resize(width, height uint32) {
	if !r.surface.Resize(width, height) {
		return
	}

	r.state = StateSurfaceStale

	if r.camera != nil {
		r.camera.AspectRatio = camera.AspectRatio(width, height)
		r.cameraDirty = true
	}
}

// UpdateCamera modifies the camera. The new matrix is uploaded before the
// next render pass.
func (r *Renderer) UpdateCamera(update func(cam *camera.State)) {
	if r.camera == nil {
		return
	}

	update(r.camera)
	r.cameraDirty = true
}

// Draw renders and presents a single frame. Transient surface problems
// and failures while recording or submitting the pass skip the frame and
// are reported through the Outcome, the error is only set for fatal
// problems.
func (r *Renderer) Draw() (Outcome, error) {
	defer func() { r.state = StateIdle }()

	if err := r.prepare(); err != nil {
		return 0, err
	}

	handle, outcome, err := r.acquire()
	if err != nil || handle == nil {
		return outcome, err
	}

	// frames that fail before being submitted are never presented
	defer handle.discard()

	r.state = StateRecordingPass

	frame, err := r.current(handle)
	if err != nil {
		return 0, err
	}

	cmds, err := r.dev.Encode(frame, RenderPass{
		ClearColor: r.clearColor,
		BindCamera: r.camera != nil,
		Draw:       r.draw,
	})

	if err != nil {
		return r.skipRecording("record render pass", err), nil
	}

	err = r.dev.Submit(cmds)
	cmds.Release()

	if err != nil {
		return r.skipRecording("submit commands", err), nil
	}

	r.state = StateSubmitted

	if err := r.present(handle); err != nil {
		return 0, err
	}

	r.state = StatePresented
	r.stats.Presented++

	return OutcomePresented, nil
}

// skipRecording drops a frame that could not be recorded or submitted.
// The frame itself is discarded by the deferred handle cleanup in Draw.
func (r *Renderer) skipRecording(step string, err error) Outcome {
	slog.Warn("Skip frame", slog.String("step", step), slog.Any("err", err))

	r.stats.Skipped++

	return OutcomeSkippedRecording
}

// prepare configures the surface and uploads the camera if needed.
func (r *Renderer) prepare() error {
	if r.surface.NeedsReconfigure() {
		if err := r.reconfigure(); err != nil {
			return err
		}
	}

	r.state = StateSurfaceReady

	if err := r.uploadCamera(); err != nil {
		return err
	}

	return nil
}

func (r *Renderer) reconfigure() error {
	config := r.surface.Config()

	slog.Debug("Configure surface",
		slog.Int("width", int(config.Width)),
		slog.Int("height", int(config.Height)),
		slog.String("presentMode", config.PresentMode.String()),
	)

	if err := r.surface.Configure(r.dev); err != nil {
		return err
	}

	r.stats.Reconfigures++

	return nil
}

func (r *Renderer) uploadCamera() error {
	if r.camera == nil || !r.cameraDirty {
		return nil
	}

	if err := r.dev.WriteCamera(camera.UniformOf(*r.camera)); err != nil {
		return fmt.Errorf("write camera uniform: %w", err)
	}

	r.cameraDirty = false

	return nil
}

// acquire requests the next frame. An outdated or lost surface is
// configured again and the request is retried once. Returns a nil
// handle if the frame should be skipped.
func (r *Renderer) acquire() (*FrameHandle, Outcome, error) {
	frame, status := r.dev.AcquireFrame()

	if status == AcquireOutdated || status == AcquireLost {
		slog.Info("Surface needs to be configured again", slog.String("status", status.String()))

		discardFrame(frame)

		r.surface.Invalidate()
		if err := r.reconfigure(); err != nil {
			return nil, 0, err
		}

		frame, status = r.dev.AcquireFrame()
	}

	switch status {
	case AcquireSuccess:
		r.state = StateFrameAcquired
		return newFrameHandle(frame, r.surface.Generation()), OutcomePresented, nil

	case AcquireTimeout:
		discardFrame(frame)
		r.stats.Skipped++
		return nil, OutcomeSkippedTimeout, nil

	case AcquireOutdated, AcquireLost:
		slog.Warn("Skip frame, surface still unavailable", slog.String("status", status.String()))

		discardFrame(frame)

		// try again with the next frame
		r.surface.Invalidate()
		r.stats.Skipped++

		return nil, OutcomeSkippedSurfaceLost, nil

	case AcquireOutOfMemory:
		discardFrame(frame)
		return nil, 0, fmt.Errorf("acquire frame: %w", ErrOutOfMemory)

	default:
		return nil, 0, fmt.Errorf("acquire frame: unknown status %s", status)
	}
}

func discardFrame(frame Frame) {
	if frame != nil {
		frame.Discard()
	}
}

// current returns the frame of a handle without consuming it.
func (r *Renderer) current(handle *FrameHandle) (Frame, error) {
	if !handle.valid(r.surface.Generation()) {
		return nil, ErrFrameConsumed
	}

	return handle.frame, nil
}

func (r *Renderer) present(handle *FrameHandle) error {
	frame, err := handle.take(r.surface.Generation())
	if err != nil {
		return fmt.Errorf("present frame: %w", err)
	}

	if err := r.dev.Present(frame); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}

	return nil
}
