// Package config loads the options of the pentagon viewer.
//
// Options are read from an optional toml file over the defaults, then
// environment variables are applied on top:
//
//	WGPU_FORCE_FALLBACK_ADAPTER=1  use a software adapter
//	PENTAGON_PRESENT_MODE          fifo, mailbox or immediate
//	PENTAGON_LOG_LEVEL             debug, info, warn or error
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/frame"
	"github.com/oliverbestmann/pentagon/glm"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("invalid configuration")

type Options struct {
	LogLevel string `toml:"log_level"`

	// write a "cpu" or "mem" profile into the working directory
	Profile string `toml:"profile"`

	Window WindowOptions `toml:"window"`
	Render RenderOptions `toml:"render"`
	Camera CameraOptions `toml:"camera"`
}

type WindowOptions struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderOptions struct {
	PresentMode          string     `toml:"present_mode"`
	CullBackFaces        bool       `toml:"cull_back_faces"`
	ClearColor           [4]float32 `toml:"clear_color"`
	ForceFallbackAdapter bool       `toml:"force_fallback_adapter"`
}

type CameraOptions struct {
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	Up     [3]float32 `toml:"up"`

	// vertical field of view in degrees
	FovY float32 `toml:"fov_y"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`

	// degrees per second, zero disables the orbit animation
	OrbitSpeed float32 `toml:"orbit_speed"`
}

func Default() Options {
	return Options{
		LogLevel: "info",
		Window: WindowOptions{
			Width:  800,
			Height: 600,
			Title:  "Pentagon",
		},
		Render: RenderOptions{
			PresentMode:   "fifo",
			CullBackFaces: true,
			ClearColor:    [4]float32{0.1, 0.2, 0.3, 1.0},
		},
		Camera: CameraOptions{
			Eye:    [3]float32{0, 1, 3},
			Target: [3]float32{0, 0, 0},
			Up:     [3]float32{0, 1, 0},
			FovY:   45,
			Near:   0.1,
			Far:    100,
		},
	}
}

// Load reads the options from the toml file at path over the defaults and
// applies the environment. An empty path skips the file.
func Load(path string) (Options, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (Options, error) {
	opts := Default()

	if path != "" {
		if err := opts.readFile(path); err != nil {
			return Options{}, err
		}
	}

	opts.applyEnv(lookupEnv)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func (o *Options) readFile(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	dec := toml.NewDecoder(fp).DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}

		return fmt.Errorf("decode config %q: %w", path, err)
	}

	return nil
}

func (o *Options) applyEnv(lookupEnv func(string) (string, bool)) {
	if value, ok := lookupEnv("WGPU_FORCE_FALLBACK_ADAPTER"); ok && value == "1" {
		o.Render.ForceFallbackAdapter = true
	}

	if value, ok := lookupEnv("PENTAGON_PRESENT_MODE"); ok && value != "" {
		o.Render.PresentMode = value
	}

	if value, ok := lookupEnv("PENTAGON_LOG_LEVEL"); ok && value != "" {
		o.LogLevel = value
	}
}

func (o *Options) Validate() error {
	var errs []error

	if o.Window.Width <= 0 || o.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", frame.ErrInvalidSize, o.Window.Width, o.Window.Height))
	}

	if _, err := o.PresentMode(); err != nil {
		errs = append(errs, err)
	}

	if _, err := o.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch o.Profile {
	case "", "cpu", "mem":
	default:
		errs = append(errs, fmt.Errorf("unknown profile %q", o.Profile))
	}

	cam := o.Camera

	if cam.FovY <= 0 || cam.FovY >= 180 {
		errs = append(errs, fmt.Errorf("field of view %g not in (0, 180)", cam.FovY))
	}

	if cam.Near <= 0 || cam.Near >= cam.Far {
		errs = append(errs, fmt.Errorf("near plane %g must be positive and before far plane %g", cam.Near, cam.Far))
	}

	if cam.Eye == cam.Target {
		errs = append(errs, errors.New("camera eye and target must differ"))
	}

	if cam.Up == [3]float32{} {
		errs = append(errs, errors.New("camera up vector must not be zero"))
	} else if cam.Eye != cam.Target && parallel(glm.Vec3f(cam.Target).Sub(glm.Vec3f(cam.Eye)), glm.Vec3f(cam.Up)) {
		errs = append(errs, errors.New("camera up vector must not be parallel to the view direction"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// parallel reports if both vectors point along the same line,
// relative to their lengths.
func parallel(a, b glm.Vec3f) bool {
	return a.Cross(b).Length() <= 1e-6*a.Length()*b.Length()
}

func (o *Options) PresentMode() (frame.PresentMode, error) {
	modes := []frame.PresentMode{
		frame.PresentModeFifo,
		frame.PresentModeMailbox,
		frame.PresentModeImmediate,
	}

	for _, mode := range modes {
		if strings.EqualFold(mode.String(), o.Render.PresentMode) {
			return mode, nil
		}
	}

	return frame.PresentModeFifo, fmt.Errorf("unknown present mode %q", o.Render.PresentMode)
}

func (o *Options) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", o.LogLevel)
	}

	return level, nil
}

// CameraState returns the initial camera for a surface of the given size.
func (o *Options) CameraState(width, height uint32) camera.State {
	return camera.State{
		Eye:         glm.Vec3f(o.Camera.Eye),
		Target:      glm.Vec3f(o.Camera.Target),
		Up:          glm.Vec3f(o.Camera.Up),
		AspectRatio: camera.AspectRatio(width, height),
		FovY:        o.Camera.FovY,
		Near:        o.Camera.Near,
		Far:         o.Camera.Far,
	}
}

// OrbitSpeed returns the orbit speed in radians per second.
func (o *Options) OrbitSpeed() glm.Rad {
	return glm.DegToRad(o.Camera.OrbitSpeed)
}
