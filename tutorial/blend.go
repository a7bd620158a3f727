package tutorial

import "math"

// blendSteps is the number of increments between 0 and 1.
const blendSteps = 10

// Blend is a mix factor in [0, 1] adjusted in steps of 0.1. The zero value
// is 0; use NewBlend for another start.
type Blend struct {
	step int
}

// NewBlend returns the step nearest v, clamped to [0, 1].
func NewBlend(v float32) Blend {
	b := Blend{step: int(math.Round(float64(v) * blendSteps))}
	b.clamp()
	return b
}

func (b *Blend) clamp() {
	if b.step < 0 {
		b.step = 0
	}
	if b.step > blendSteps {
		b.step = blendSteps
	}
}

// Increase moves the factor up one step, stopping at 1.
func (b *Blend) Increase() { b.step++; b.clamp() }

// Decrease moves the factor down one step, stopping at 0.
func (b *Blend) Decrease() { b.step--; b.clamp() }

// Value returns the factor.
func (b Blend) Value() float32 { return float32(b.step) / blendSteps }
