// Package orion wires the window, the graphics backend and the frame
// renderer together.
package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/pentagon/config"
	"github.com/oliverbestmann/pentagon/frame"
	"github.com/oliverbestmann/pentagon/glimpse"
	"github.com/oliverbestmann/pentagon/mesh"
	"github.com/oliverbestmann/pentagon/pulse"
	"github.com/pkg/profile"
)

// Run opens a window and draws the pentagon until the window is closed.
// Resources are released in reverse order of creation.
func Run(opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if stop := startProfile(opts.Profile); stop != nil {
		defer stop()
	}

	presentMode, err := opts.PresentMode()
	if err != nil {
		return err
	}

	// create a new window
	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:  opts.Window.Width,
		Height: opts.Window.Height,
		Title:  opts.Window.Title,
	})
	if err != nil {
		return fmt.Errorf("%w: create window: %w", frame.ErrInitialization, err)
	}

	defer win.Terminate()

	pentagon := mesh.Pentagon()

	var ctx *pulse.Context
	var backend *pulse.Backend

	defer func() {
		if backend != nil {
			backend.Release()
		}

		if ctx != nil {
			ctx.Release()
		}
	}()

	open := func() (frame.Device, error) {
		// initialize the webgpu device
		ctx, err = pulse.New(win.SurfaceDescriptor(), pulse.ContextOptions{
			ForceFallbackAdapter: opts.Render.ForceFallbackAdapter,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing wgpu: %w", err)
		}

		backend, err = pulse.NewBackend(ctx, pulse.BackendOptions{
			PresentMode:   presentMode,
			CullBackFaces: opts.Render.CullBackFaces,
			Mesh:          pentagon,
			Camera:        true,
		})
		if err != nil {
			return nil, fmt.Errorf("create backend: %w", err)
		}

		return backend, nil
	}

	width, height := win.Size()
	cam := opts.CameraState(width, height)

	slog.Info("Starting frame loop",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.String("presentMode", presentMode.String()),
	)

	return frame.Host(win, open, frame.HostOptions{
		Camera:     &cam,
		ClearColor: frame.Color(opts.Render.ClearColor),
		Draw:       pentagon.DrawCall(),
		OrbitSpeed: opts.OrbitSpeed(),
	})
}

func startProfile(mode string) func() {
	var p interface{ Stop() }

	switch mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}

	return p.Stop
}
