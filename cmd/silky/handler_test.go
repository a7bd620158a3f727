package main

import (
	"testing"

	"dasa.cc/silky/config"
	"dasa.cc/silky/gpu/gltest"
	"dasa.cc/silky/tutorial"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerInput(t *testing.T) {
	scene := tutorial.NewBlendQuad(tutorial.Options{Blend: 0.5})
	h, err := newHandler(scene, config.Default().Input)
	require.NoError(t, err)

	ctx := gltest.New()
	require.NoError(t, h.Load(ctx))

	h.KeyDown(glfw.KeyUp)
	assert.InDelta(t, 0.6, scene.Blend(), 1e-6)
	h.ButtonDown(glfw.ButtonDpadDown)
	h.ButtonDown(glfw.ButtonDpadDown)
	assert.InDelta(t, 0.4, scene.Blend(), 1e-6)
	h.KeyDown(glfw.KeySpace)
	h.ButtonDown(glfw.ButtonA)
	assert.InDelta(t, 0.4, scene.Blend(), 1e-6)

	h.Close()
	assert.Zero(t, ctx.Live())
}

func TestHandlerBadNames(t *testing.T) {
	in := config.Default().Input
	in.IncreaseKey = "hyper"
	_, err := newHandler(tutorial.NewQuad(tutorial.Options{}), in)
	assert.Error(t, err)

	in = config.Default().Input
	in.DecreaseButton = "turbo"
	_, err = newHandler(tutorial.NewQuad(tutorial.Options{}), in)
	assert.Error(t, err)
}
