package main

import (
	"dasa.cc/silky/config"
	"dasa.cc/silky/host"
	"dasa.cc/silky/tutorial"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// handler drives a scene from host callbacks, translating keys and gamepad
// buttons into scene input.
type handler struct {
	tutorial.Scene
	keys    map[glfw.Key]tutorial.Input
	buttons map[glfw.GamepadButton]tutorial.Input
}

var _ host.Handler = (*handler)(nil)

func newHandler(s tutorial.Scene, in config.Input) (*handler, error) {
	h := &handler{
		Scene:   s,
		keys:    make(map[glfw.Key]tutorial.Input),
		buttons: make(map[glfw.GamepadButton]tutorial.Input),
	}
	for name, input := range map[string]tutorial.Input{
		in.IncreaseKey: tutorial.InputIncrease,
		in.DecreaseKey: tutorial.InputDecrease,
	} {
		k, err := host.ParseKey(name)
		if err != nil {
			return nil, err
		}
		h.keys[k] = input
	}
	for name, input := range map[string]tutorial.Input{
		in.IncreaseButton: tutorial.InputIncrease,
		in.DecreaseButton: tutorial.InputDecrease,
	} {
		b, err := host.ParseButton(name)
		if err != nil {
			return nil, err
		}
		h.buttons[b] = input
	}
	return h, nil
}

func (h *handler) Close() { h.Release() }

func (h *handler) KeyDown(key glfw.Key) {
	if in, ok := h.keys[key]; ok {
		h.Input(in)
	}
}

func (h *handler) ButtonDown(button glfw.GamepadButton) {
	if in, ok := h.buttons[button]; ok {
		h.Input(in)
	}
}
