package frame

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/glm"
	"github.com/oliverbestmann/pentagon/mesh"
)

// EventHandler receives the events of a window.
type EventHandler interface {
	Resize(width, height uint32)
	Redraw() error
}

// EventSource is a window delivering events to an EventHandler.
type EventSource interface {
	// Size returns the current size of the drawable area in pixels.
	Size() (uint32, uint32)

	// Run dispatches events to the handler until the window is closed
	// or the handler returns an error.
	Run(handler EventHandler) error

	// RequestRedraw schedules a call to EventHandler.Redraw.
	RequestRedraw()
}

// Opener creates the graphics device.
type Opener func() (Device, error)

type HostOptions struct {
	Camera     *camera.State
	ClearColor Color
	Draw       mesh.DrawCall

	// radians per second to orbit the camera around its target, zero disables
	OrbitSpeed glm.Rad
}

// Host opens the device, builds a Renderer and runs the event loop of the
// window until it is closed. Initialization failures are reported as
// ErrInitialization and the event loop is not entered.
func Host(events EventSource, open Opener, opts HostOptions) error {
	dev, err := open()
	if err != nil {
		return fmt.Errorf("%w: open device: %w", ErrInitialization, err)
	}

	width, height := events.Size()

	renderer, err := NewRenderer(dev, Options{
		Surface:    dev.PreferredConfig(width, height),
		Camera:     opts.Camera,
		ClearColor: opts.ClearColor,
		Draw:       opts.Draw,
	})

	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	loop := &hostLoop{
		events:     events,
		renderer:   renderer,
		orbitSpeed: opts.OrbitSpeed,
	}

	events.RequestRedraw()

	if err := events.Run(loop); err != nil {
		return err
	}

	stats := renderer.Stats()
	slog.Info("Frame loop finished",
		slog.Uint64("presented", stats.Presented),
		slog.Uint64("skipped", stats.Skipped),
		slog.Uint64("reconfigures", stats.Reconfigures),
	)

	return nil
}

type hostLoop struct {
	events   EventSource
	renderer *Renderer

	orbitSpeed glm.Rad

	times FrameTimes
}

func (h *hostLoop) Resize(width, height uint32) {
	h.renderer.Resize(width, height)
}

func (h *hostLoop) Redraw() error {
	if h.orbitSpeed != 0 && h.times.Delta > 0 {
		angle := h.orbitSpeed * glm.Rad(h.times.Delta.Seconds())
		h.renderer.UpdateCamera(func(cam *camera.State) {
			*cam = cam.Orbit(angle)
		})
	}

	outcome, err := h.renderer.Draw()
	if err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}

	if outcome == OutcomePresented && h.times.Tick() {
		slog.Debug("Frame times",
			slog.Uint64("frames", h.times.FrameCount),
			slog.Duration("average", h.times.AverageDuration),
			slog.Duration("max", h.times.MaxDuration),
			slog.Float64("fps", h.times.FPS()),
		)
	}

	// keep the loop running, skipped frames are retried with the next redraw
	h.events.RequestRedraw()

	return nil
}
