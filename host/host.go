// Package host runs a glfw window and forwards its lifecycle and input to a
// Handler on the thread that owns the GL context.
package host

import (
	"fmt"

	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Handler receives window lifecycle and input callbacks.
type Handler interface {
	// Load is called once after the context is current.
	Load(ctx gpu.Context) error

	// Update advances logic by dt seconds.
	Update(dt float64)

	// Render draws one frame; an error stops the loop.
	Render(dt float64) error

	// Resize reports the framebuffer size in pixels, once after Load and then
	// on every change.
	Resize(width, height int)

	// Close is called once before the context is destroyed.
	Close()

	KeyDown(key glfw.Key)
	ButtonDown(button glfw.GamepadButton)
}

// Options configure the window.
type Options struct {
	Title         string
	Width, Height int
	VSync         bool

	// ExitKey and ExitButton request the window to close.
	ExitKey    glfw.Key
	ExitButton glfw.GamepadButton

	Logger *zap.Logger
}

// Run creates the window, calls h until the window is closed or Render fails,
// and tears everything down. It must be called from the main thread.
func Run(opts Options, h Handler) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("host: glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("host: create window: %w", err)
	}
	defer window.Destroy()

	window.MakeContextCurrent()
	if err := glcore.Init(); err != nil {
		return fmt.Errorf("host: gl init: %w", err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	ctx := glcore.Context{}
	if err := h.Load(ctx); err != nil {
		return fmt.Errorf("host: load: %w", err)
	}
	defer h.Close()
	log.Info("window open", zap.String("title", opts.Title), zap.Int("width", opts.Width), zap.Int("height", opts.Height))

	resize := func(width, height int) {
		ctx.Viewport(0, 0, width, height)
		h.Resize(width, height)
	}
	resize(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		log.Debug("resize", zap.Int("width", width), zap.Int("height", height))
		resize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == opts.ExitKey {
			w.SetShouldClose(true)
		}
		h.KeyDown(key)
	})

	var pads gamepads
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, b := range pads.poll() {
			if b == opts.ExitButton {
				window.SetShouldClose(true)
			}
			h.ButtonDown(b)
		}

		now := glfw.GetTime()
		dt := now - last
		last = now

		h.Update(dt)
		if err := h.Render(dt); err != nil {
			return fmt.Errorf("host: render: %w", err)
		}
		window.SwapBuffers()
	}
	log.Info("window closed")
	return nil
}
