package frame

import (
	"fmt"
	"log/slog"
)

// Surface tracks the configuration of the presentation surface.
// Resizes only record the requested size, the device is configured
// lazily by the renderer at the start of the next frame.
type Surface struct {
	config SurfaceConfig

	configured       bool
	needsReconfigure bool

	// incremented on every configure, frames acquired under an
	// older generation are invalid
	generation uint64
}

func NewSurface(config SurfaceConfig) (*Surface, error) {
	if config.Width == 0 || config.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, config.Width, config.Height)
	}

	return &Surface{config: config, needsReconfigure: true}, nil
}

func (s *Surface) Config() SurfaceConfig {
	return s.config
}

func (s *Surface) NeedsReconfigure() bool {
	return s.needsReconfigure || !s.configured
}

func (s *Surface) Generation() uint64 {
	return s.generation
}

// Resize records the new size of the surface. A zero sized surface,
// e.g. a minimized window, is ignored. Returns true if the surface
// needs to be configured again.
func (s *Surface) Resize(width, height uint32) bool {
	if width == 0 || height == 0 {
		slog.Debug("Ignore resize to empty surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		return false
	}

	if s.configured && s.config.Width == width && s.config.Height == height {
		return s.needsReconfigure
	}

	s.config.Width = width
	s.config.Height = height
	s.needsReconfigure = true

	return true
}

// Invalidate forces a configure before the next frame is acquired.
func (s *Surface) Invalidate() {
	s.needsReconfigure = true
}

// Configure applies the current configuration to the device.
func (s *Surface) Configure(dev Device) error {
	if err := dev.Configure(s.config); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}

	s.configured = true
	s.needsReconfigure = false
	s.generation++

	return nil
}
