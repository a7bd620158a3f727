package host

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var keys = map[string]glfw.Key{
	"escape":    glfw.KeyEscape,
	"space":     glfw.KeySpace,
	"enter":     glfw.KeyEnter,
	"backspace": glfw.KeyBackspace,
	"tab":       glfw.KeyTab,
	"up":        glfw.KeyUp,
	"down":      glfw.KeyDown,
	"left":      glfw.KeyLeft,
	"right":     glfw.KeyRight,
	"minus":     glfw.KeyMinus,
	"equal":     glfw.KeyEqual,
	"q":         glfw.KeyQ,
	"w":         glfw.KeyW,
	"a":         glfw.KeyA,
	"s":         glfw.KeyS,
	"d":         glfw.KeyD,
}

var buttons = map[string]glfw.GamepadButton{
	"a":            glfw.ButtonA,
	"b":            glfw.ButtonB,
	"x":            glfw.ButtonX,
	"y":            glfw.ButtonY,
	"left_bumper":  glfw.ButtonLeftBumper,
	"right_bumper": glfw.ButtonRightBumper,
	"back":         glfw.ButtonBack,
	"start":        glfw.ButtonStart,
	"guide":        glfw.ButtonGuide,
	"left_thumb":   glfw.ButtonLeftThumb,
	"right_thumb":  glfw.ButtonRightThumb,
	"dpad_up":      glfw.ButtonDpadUp,
	"dpad_right":   glfw.ButtonDpadRight,
	"dpad_down":    glfw.ButtonDpadDown,
	"dpad_left":    glfw.ButtonDpadLeft,
}

// ParseKey maps a case-insensitive key name such as "escape" or "up".
func ParseKey(name string) (glfw.Key, error) {
	if k, ok := keys[strings.ToLower(name)]; ok {
		return k, nil
	}
	return glfw.KeyUnknown, fmt.Errorf("host: unknown key %q", name)
}

// ParseButton maps a case-insensitive gamepad button name such as "back" or
// "dpad_up".
func ParseButton(name string) (glfw.GamepadButton, error) {
	if b, ok := buttons[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("host: unknown gamepad button %q", name)
}

const numButtons = int(glfw.ButtonLast) + 1

// pressed returns buttons held in cur but not in prev.
func pressed(prev, cur *[numButtons]glfw.Action) []glfw.GamepadButton {
	var bs []glfw.GamepadButton
	for i := range cur {
		if cur[i] == glfw.Press && prev[i] != glfw.Press {
			bs = append(bs, glfw.GamepadButton(i))
		}
	}
	return bs
}

// gamepads remembers button state per joystick between polls.
type gamepads struct {
	state [int(glfw.JoystickLast) + 1][numButtons]glfw.Action
}

// poll returns buttons newly pressed on any connected gamepad.
func (g *gamepads) poll() []glfw.GamepadButton {
	var bs []glfw.GamepadButton
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		var cur [numButtons]glfw.Action
		if j.IsGamepad() {
			if st := j.GetGamepadState(); st != nil {
				cur = st.Buttons
			}
		}
		bs = append(bs, pressed(&g.state[j], &cur)...)
		g.state[j] = cur
	}
	return bs
}
