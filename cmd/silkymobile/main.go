// Command silkymobile runs a tutorial scene under golang.org/x/mobile/app.
// Touching the top half of the screen, or pressing the up arrow, increases
// the scene input; the bottom half and down arrow decrease it.
package main

import (
	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/glmobile"
	"dasa.cc/silky/tutorial"
	"go.uber.org/zap"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// Build settings, overridden with -ldflags "-X main.sceneName=quad". Shader
// names, when both are set, are read from the app's assets directory.
var (
	sceneName  = "blend"
	vertShader string
	fragShader string
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	gpu.SetLogger(logger.Named("gpu"))
	tutorial.SetLogger(logger.Named("tutorial"))

	scene, err := tutorial.New(sceneName, tutorial.Options{
		GLSL:           "300 es",
		VertexShader:   vertShader,
		FragmentShader: fragShader,
		Assets:         true,
		Blend:          0.5,
	})
	if err != nil {
		logger.Fatal("scene", zap.Error(err))
	}

	app.Main(func(a app.App) {
		v := &view{scene: scene, log: logger}
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				v.onLifecycle(e)
				a.Send(paint.Event{})
			case size.Event:
				v.onSize(e)
			case paint.Event:
				if v.ctx == nil || e.External {
					continue
				}
				if err := v.scene.Render(0); err != nil {
					v.log.Error("render", zap.Error(err))
				}
				a.Publish()
				a.Send(paint.Event{})
			case touch.Event:
				if e.Type == touch.TypeBegin {
					v.onTouch(e)
				}
			case key.Event:
				if e.Direction == key.DirPress {
					v.onKey(e)
				}
			}
		}
	})
}

type view struct {
	scene tutorial.Scene
	ctx   *glmobile.Context
	sz    size.Event
	log   *zap.Logger
}

func (v *view) onLifecycle(e lifecycle.Event) {
	switch e.Crosses(lifecycle.StageVisible) {
	case lifecycle.CrossOn:
		ctx, err := glmobile.With(e.DrawContext)
		if err != nil {
			v.log.Error("context", zap.Error(err))
			return
		}
		if err := v.scene.Load(ctx); err != nil {
			v.log.Error("load", zap.Error(err))
			return
		}
		v.ctx = ctx
		if v.sz.WidthPx > 0 {
			v.onSize(v.sz)
		}
	case lifecycle.CrossOff:
		v.scene.Release()
		v.ctx = nil
	}
}

func (v *view) onSize(e size.Event) {
	v.sz = e
	if v.ctx == nil {
		return
	}
	v.ctx.Viewport(0, 0, e.WidthPx, e.HeightPx)
	v.scene.Resize(e.WidthPx, e.HeightPx)
}

func (v *view) onTouch(e touch.Event) {
	if int(e.Y) < v.sz.HeightPx/2 {
		v.scene.Input(tutorial.InputIncrease)
	} else {
		v.scene.Input(tutorial.InputDecrease)
	}
}

func (v *view) onKey(e key.Event) {
	switch e.Code {
	case key.CodeUpArrow:
		v.scene.Input(tutorial.InputIncrease)
	case key.CodeDownArrow:
		v.scene.Input(tutorial.InputDecrease)
	}
}
