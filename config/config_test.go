package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/pentagon/camera"
	"github.com/oliverbestmann/pentagon/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func envOf(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pentagon.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	opts, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)

	assert.Equal(t, Default(), opts)

	mode, err := opts.PresentMode()
	require.NoError(t, err)
	assert.Equal(t, frame.PresentModeFifo, mode)

	level, err := opts.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	// the default camera matches the camera package
	assert.Equal(t, camera.Default(800, 600), opts.CameraState(800, 600))
	assert.Zero(t, opts.OrbitSpeed())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 1024
height = 768

[render]
present_mode = "mailbox"
cull_back_faces = false
clear_color = [0.0, 0.0, 0.0, 1.0]

[camera]
fov_y = 60.0
orbit_speed = 90.0
`)

	opts, err := LoadWithEnv(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 1024, opts.Window.Width)
	assert.Equal(t, 768, opts.Window.Height)
	assert.False(t, opts.Render.CullBackFaces)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, opts.Render.ClearColor)
	assert.Equal(t, float32(60), opts.Camera.FovY)

	// untouched values keep their defaults
	assert.Equal(t, "Pentagon", opts.Window.Title)
	assert.Equal(t, float32(0.1), opts.Camera.Near)

	mode, err := opts.PresentMode()
	require.NoError(t, err)
	assert.Equal(t, frame.PresentModeMailbox, mode)

	assert.InDelta(t, 1.5707963, float64(opts.OrbitSpeed()), 1e-6)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
[window]
widht = 1024
`)

	_, err := LoadWithEnv(path, noEnv)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.toml"), noEnv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
[render]
present_mode = "mailbox"
`)

	opts, err := LoadWithEnv(path, envOf(map[string]string{
		"WGPU_FORCE_FALLBACK_ADAPTER": "1",
		"PENTAGON_PRESENT_MODE":       "Immediate",
		"PENTAGON_LOG_LEVEL":          "WARN",
	}))

	require.NoError(t, err)

	assert.True(t, opts.Render.ForceFallbackAdapter)

	mode, err := opts.PresentMode()
	require.NoError(t, err)
	assert.Equal(t, frame.PresentModeImmediate, mode)

	level, err := opts.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestFallbackAdapterRequiresOne(t *testing.T) {
	opts, err := LoadWithEnv("", envOf(map[string]string{"WGPU_FORCE_FALLBACK_ADAPTER": "0"}))
	require.NoError(t, err)
	assert.False(t, opts.Render.ForceFallbackAdapter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(opts *Options)
	}{
		{name: "zero width", modify: func(opts *Options) { opts.Window.Width = 0 }},
		{name: "negative height", modify: func(opts *Options) { opts.Window.Height = -1 }},
		{name: "present mode", modify: func(opts *Options) { opts.Render.PresentMode = "vsync" }},
		{name: "log level", modify: func(opts *Options) { opts.LogLevel = "verbose" }},
		{name: "profile", modify: func(opts *Options) { opts.Profile = "trace" }},
		{name: "zero fov", modify: func(opts *Options) { opts.Camera.FovY = 0 }},
		{name: "fov too large", modify: func(opts *Options) { opts.Camera.FovY = 180 }},
		{name: "near after far", modify: func(opts *Options) { opts.Camera.Near = 200 }},
		{name: "near equals far", modify: func(opts *Options) { opts.Camera.Near = opts.Camera.Far }},
		{name: "negative near", modify: func(opts *Options) { opts.Camera.Near = -1 }},
		{name: "eye at target", modify: func(opts *Options) { opts.Camera.Eye = opts.Camera.Target }},
		{name: "zero up", modify: func(opts *Options) { opts.Camera.Up = [3]float32{} }},
		{name: "up along view", modify: func(opts *Options) {
			opts.Camera.Eye = [3]float32{0, 3, 0}
			opts.Camera.Target = [3]float32{0, 0, 0}
			opts.Camera.Up = [3]float32{0, 1, 0}
		}},
		{name: "up against view", modify: func(opts *Options) {
			opts.Camera.Eye = [3]float32{0, 3, 0}
			opts.Camera.Target = [3]float32{0, 0, 0}
			opts.Camera.Up = [3]float32{0, -2, 0}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.modify(&opts)

			err := opts.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("size error", func(t *testing.T) {
		opts := Default()
		opts.Window.Width = 0

		assert.ErrorIs(t, opts.Validate(), frame.ErrInvalidSize)
	})

	t.Run("tilted up vector", func(t *testing.T) {
		opts := Default()
		opts.Camera.Eye = [3]float32{0, 3, 0}
		opts.Camera.Target = [3]float32{0, 0, 0}
		opts.Camera.Up = [3]float32{0, 0, -1}

		require.NoError(t, opts.Validate())

		matrix := opts.CameraState(800, 600).BuildViewProjection()
		for idx, value := range matrix {
			assert.False(t, math.IsNaN(float64(value)), "element %d", idx)
		}
	})

	t.Run("profiles", func(t *testing.T) {
		for _, profile := range []string{"", "cpu", "mem"} {
			opts := Default()
			opts.Profile = profile
			assert.NoError(t, opts.Validate(), profile)
		}
	})
}
