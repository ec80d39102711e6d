package pulse

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/frame"
)

// surfaceFrame is the surface texture of a single frame.
type surfaceFrame struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (f *surfaceFrame) Discard() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}

	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

var srgbFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatBGRA8UnormSrgb,
	wgpu.TextureFormatRGBA8UnormSrgb,
}

// chooseFormat returns the first srgb format, or the first format
// if the surface does not support srgb at all.
func chooseFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if slices.Contains(srgbFormats, format) {
			return format
		}
	}

	if len(formats) == 0 {
		return wgpu.TextureFormatBGRA8UnormSrgb
	}

	return formats[0]
}

// first returns the first value or the zero value if values is empty.
func first[T any](values []T) (value T) {
	if len(values) > 0 {
		value = values[0]
	}

	return
}

func wgpuPresentMode(mode frame.PresentMode) wgpu.PresentMode {
	switch mode {
	case frame.PresentModeMailbox:
		return wgpu.PresentModeMailbox
	case frame.PresentModeImmediate:
		return wgpu.PresentModeImmediate
	default:
		return wgpu.PresentModeFifo
	}
}

// choosePresentMode falls back to fifo, which is always supported, if
// the preferred mode is not available.
func choosePresentMode(supported []wgpu.PresentMode, preferred frame.PresentMode) frame.PresentMode {
	if preferred == frame.PresentModeFifo || slices.Contains(supported, wgpuPresentMode(preferred)) {
		return preferred
	}

	slog.Warn("Present mode not supported, using fifo",
		slog.String("presentMode", preferred.String()),
	)

	return frame.PresentModeFifo
}

// classifyAcquireError maps the error of GetCurrentTexture to the
// status reported by the surface.
func classifyAcquireError(err error) frame.AcquireStatus {
	if err == nil {
		return frame.AcquireSuccess
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout"):
		return frame.AcquireTimeout

	case strings.Contains(msg, "outdated"):
		return frame.AcquireOutdated

	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return frame.AcquireOutOfMemory

	case strings.Contains(msg, "lost"):
		return frame.AcquireLost

	default:
		slog.Warn("Unknown surface error, treating surface as lost", slog.String("err", err.Error()))
		return frame.AcquireLost
	}
}
