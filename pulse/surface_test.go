package pulse

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/pentagon/frame"
	"github.com/stretchr/testify/assert"
)

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name     string
		formats  []wgpu.TextureFormat
		expected wgpu.TextureFormat
	}{
		{
			name:     "first srgb",
			formats:  []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
			expected: wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:     "no srgb",
			formats:  []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			expected: wgpu.TextureFormatRGBA8Unorm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chooseFormat(tt.formats))
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	supported := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate}

	assert.Equal(t, frame.PresentModeFifo, choosePresentMode(supported, frame.PresentModeFifo))
	assert.Equal(t, frame.PresentModeImmediate, choosePresentMode(supported, frame.PresentModeImmediate))
	assert.Equal(t, frame.PresentModeFifo, choosePresentMode(supported, frame.PresentModeMailbox))

	// fifo does not need to be reported
	assert.Equal(t, frame.PresentModeFifo, choosePresentMode(nil, frame.PresentModeFifo))
}

func TestWgpuPresentMode(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, wgpuPresentMode(frame.PresentModeFifo))
	assert.Equal(t, wgpu.PresentModeMailbox, wgpuPresentMode(frame.PresentModeMailbox))
	assert.Equal(t, wgpu.PresentModeImmediate, wgpuPresentMode(frame.PresentModeImmediate))
}

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		err      error
		expected frame.AcquireStatus
	}{
		{err: nil, expected: frame.AcquireSuccess},
		{err: errors.New("Timeout"), expected: frame.AcquireTimeout},
		{err: errors.New("surface texture status: Outdated"), expected: frame.AcquireOutdated},
		{err: errors.New("Lost"), expected: frame.AcquireLost},
		{err: errors.New("OutOfMemory"), expected: frame.AcquireOutOfMemory},
		{err: errors.New("device is out of memory"), expected: frame.AcquireOutOfMemory},
		{err: errors.New("DeviceLost"), expected: frame.AcquireLost},
		{err: errors.New("something unexpected"), expected: frame.AcquireLost},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyAcquireError(tt.err))
		})
	}
}

func TestFirst(t *testing.T) {
	assert.Equal(t, 3, first([]int{3, 4}))
	assert.Equal(t, 0, first[int](nil))
}

func TestParseLogLevel(t *testing.T) {
	level, ok := parseLogLevel(" debug ")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelDebug, level)

	_, ok = parseLogLevel("")
	assert.False(t, ok)

	_, ok = parseLogLevel("verbose")
	assert.False(t, ok)
}
