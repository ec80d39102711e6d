//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/pentagon/frame"
)

type glfwWindow struct {
	win *glfw.Window

	// a redraw was requested and not yet delivered
	redraw bool
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			slog.Info("Escape pressed, closing window")
			win.SetShouldClose(true)
		}
	})

	return w, nil
}

// Size returns the size of the framebuffer in pixels.
func (g *glfwWindow) Size() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.redraw = true
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

// Run delivers window events to the handler until the window is closed.
// Resize events are delivered before the redraw they affect.
func (g *glfwWindow) Run(handler frame.EventHandler) error {
	g.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		slog.Debug("Window resized",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		handler.Resize(uint32(max(width, 0)), uint32(max(height, 0)))
	})

	defer g.win.SetFramebufferSizeCallback(nil)

	for !g.win.ShouldClose() {
		if g.redraw {
			glfw.PollEvents()
		} else {
			// nothing to draw, sleep until the next event arrives
			glfw.WaitEvents()
		}

		if g.win.ShouldClose() || !g.redraw {
			continue
		}

		g.redraw = false

		if err := handler.Redraw(); err != nil {
			return err
		}
	}

	return nil
}
