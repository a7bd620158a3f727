package tutorial_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/gltest"
	"dasa.cc/silky/tutorial"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

// uniform returns the last value uploaded to name by the program of draw.
func uniform(t *testing.T, ctx *gltest.Context, draw gltest.Draw, name string) interface{} {
	t.Helper()
	prg := ctx.Programs[draw.Program]
	require.NotNil(t, prg)
	loc, ok := prg.Uniforms[name]
	require.True(t, ok, "uniform %s not active", name)
	return prg.Values[loc]
}

func TestScenesLoadRenderRelease(t *testing.T) {
	for _, name := range tutorial.Names() {
		t.Run(name, func(t *testing.T) {
			ctx := gltest.New()
			s, err := tutorial.New(name, tutorial.Options{})
			require.NoError(t, err)

			require.NoError(t, s.Load(ctx))
			s.Resize(1280, 720)
			s.Update(1.0 / 60)
			require.NoError(t, s.Render(1.0/60))
			require.Len(t, ctx.Draws, 1)
			assert.Equal(t, gpu.TRIANGLES, ctx.Draws[0].Mode)

			s.Release()
			assert.Zero(t, ctx.Live(), "handles left after release")
			s.Release()
			assert.Empty(t, ctx.Invalid)
		})
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := tutorial.New("cube", tutorial.Options{})
	assert.ErrorContains(t, err, "cube")
	assert.Equal(t, []string{"blend", "quad", "triangle", "two-triangles"}, tutorial.Names())
}

func TestTriangle(t *testing.T) {
	ctx := gltest.New()
	s := tutorial.NewTriangle(tutorial.Options{})
	require.NoError(t, s.Load(ctx))
	defer s.Release()
	require.NoError(t, s.Render(0))

	d := ctx.Draws[0]
	assert.Equal(t, []uint32{0, 1, 2}, d.Indices)
	assert.Equal(t, 1, d.Primitives())

	va := ctx.VertexArrays[d.Array]
	require.Contains(t, va.Attribs, uint32(0))
	assert.Equal(t, 12, va.Attribs[0].Stride)
	assert.Len(t, ctx.Buffers[va.Attribs[0].Buffer], 9*4)
}

func TestTwoTriangles(t *testing.T) {
	ctx := gltest.New()
	s := tutorial.NewTwoTriangles(tutorial.Options{})
	require.NoError(t, s.Load(ctx))
	defer s.Release()
	require.NoError(t, s.Render(0))

	d := ctx.Draws[0]
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, d.Indices)
	assert.Equal(t, 2, d.Primitives())
}

func TestQuad(t *testing.T) {
	ctx := gltest.New()
	s := tutorial.NewQuad(tutorial.Options{})
	require.NoError(t, s.Load(ctx))
	defer s.Release()
	s.Resize(1600, 900)
	require.NoError(t, s.Render(0))

	d := ctx.Draws[0]
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, d.Indices)
	assert.Equal(t, 2, d.Primitives())

	va := ctx.VertexArrays[d.Array]
	assert.Equal(t, 3, va.Attribs[0].Size)
	assert.Equal(t, 20, va.Attribs[0].Stride)
	assert.Equal(t, 0, va.Attribs[0].Offset)
	assert.Equal(t, 2, va.Attribs[1].Size)
	assert.Equal(t, 20, va.Attribs[1].Stride)
	assert.Equal(t, 12, va.Attribs[1].Offset)

	proj := mgl32.Ortho2D(-16.0/9, 16.0/9, -1, 1)
	assert.Equal(t, proj[:], uniform(t, ctx, d, "uProjection"))
	assert.Equal(t, 0, uniform(t, ctx, d, "uTexture0"))

	texs := ctx.Handles(gpu.KindTexture)
	require.Len(t, texs, 1)
	tex := ctx.Textures[texs[0]]
	assert.Equal(t, 64, tex.Width)
	assert.True(t, tex.Mipmapped)

	light, dark := colornames.Grey100, colornames.BlueGrey700
	assert.Equal(t, []byte{light.R, light.G, light.B, light.A}, tex.Pix[:4])
	assert.Equal(t, []byte{dark.R, dark.G, dark.B, dark.A}, tex.Pix[4*8:4*8+4])

	r, g, b, a := tutorial.RGBA(colornames.BlueGrey500)
	assert.Equal(t, [4]float32{r, g, b, a}, ctx.ClearColorValue())
}

func TestRGBA(t *testing.T) {
	r, g, b, a := tutorial.RGBA(color.RGBA{0xff, 0x00, 0x33, 0xff})
	assert.Equal(t, float32(1), r)
	assert.Zero(t, g)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.Equal(t, float32(1), a)
}

func TestSetLoggerNil(t *testing.T) {
	tutorial.SetLogger(nil)
	ctx := gltest.New()
	s := tutorial.NewBlendQuad(tutorial.Options{})
	assert.NotPanics(t, func() {
		require.NoError(t, s.Load(ctx))
		s.Input(tutorial.InputIncrease)
	})
	s.Release()
	assert.Zero(t, ctx.Live())
}

func TestQuadMissingTexture(t *testing.T) {
	ctx := gltest.New()
	s := tutorial.NewQuad(tutorial.Options{Texture: filepath.Join(t.TempDir(), "missing.png")})
	assert.Error(t, s.Load(ctx))
	assert.Zero(t, ctx.Live())
}

func TestLinkFailureReleases(t *testing.T) {
	ctx := gltest.New()
	ctx.LinkFailure = "error: varying mismatch"
	s := tutorial.NewBlendQuad(tutorial.Options{})

	var lerr *gpu.LinkError
	require.ErrorAs(t, s.Load(ctx), &lerr)
	assert.Equal(t, "error: varying mismatch", lerr.Log)
	assert.Zero(t, ctx.Live())
}

func TestShaderFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "quad.vert")
	frag := filepath.Join(dir, "quad.frag")
	require.NoError(t, os.WriteFile(vert, []byte("#version 330 core\nuniform mat4 uProjection;\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("#version 330 core\nuniform sampler2D uTexture0;\nuniform vec4 uTint;\nvoid main() {}\n"), 0o644))

	ctx := gltest.New()
	s := tutorial.NewQuad(tutorial.Options{VertexShader: vert, FragmentShader: frag})
	require.NoError(t, s.Load(ctx))
	defer s.Release()
	require.NoError(t, s.Render(0))

	prg := ctx.Programs[ctx.Draws[0].Program]
	assert.Contains(t, prg.Uniforms, "uTint")
}

func TestBlendQuad(t *testing.T) {
	ctx := gltest.New()
	s := tutorial.NewBlendQuad(tutorial.Options{Blend: 0.5, Label: "blend"})
	require.NoError(t, s.Load(ctx))
	defer s.Release()
	require.NoError(t, s.Render(0))

	d := ctx.Draws[0]
	assert.Equal(t, 0, uniform(t, ctx, d, "uTexture0"))
	assert.Equal(t, 1, uniform(t, ctx, d, "uTexture1"))
	assert.Equal(t, float32(0.5), uniform(t, ctx, d, "uBlend"))
	assert.Len(t, ctx.Handles(gpu.KindTexture), 2)

	for i := 0; i < 6; i++ {
		s.Input(tutorial.InputIncrease)
	}
	assert.Equal(t, float32(1), s.Blend())
	require.NoError(t, s.Render(0))
	assert.Equal(t, float32(1), uniform(t, ctx, ctx.Draws[1], "uBlend"))
	assert.Equal(t, 0, uniform(t, ctx, ctx.Draws[1], "uTexture0"))
	assert.Equal(t, 1, uniform(t, ctx, ctx.Draws[1], "uTexture1"))

	for i := 0; i < 11; i++ {
		s.Input(tutorial.InputDecrease)
	}
	assert.Equal(t, float32(0), s.Blend())
}

func TestBlendClamp(t *testing.T) {
	b := tutorial.NewBlend(0.5)
	for i := 0; i < 6; i++ {
		b.Increase()
	}
	assert.Equal(t, float32(1), b.Value())
	for i := 0; i < 6; i++ {
		b.Decrease()
	}
	assert.InDelta(t, 0.4, b.Value(), 1e-6)
	for i := 0; i < 6; i++ {
		b.Decrease()
	}
	assert.Equal(t, float32(0), b.Value())

	assert.Equal(t, float32(1), tutorial.NewBlend(3).Value())
	assert.Equal(t, float32(0), tutorial.NewBlend(-1).Value())
	assert.InDelta(t, 0.3, tutorial.NewBlend(0.31).Value(), 1e-6)
}

func TestCheckerboard(t *testing.T) {
	a := color.RGBA{255, 0, 0, 255}
	b := color.RGBA{0, 0, 255, 255}
	pix := tutorial.Checkerboard(4, 4, 2, a, b)
	require.Len(t, pix, 4*4*4)

	at := func(x, y int) color.RGBA {
		i := 4 * (y*4 + x)
		return color.RGBA{pix[i], pix[i+1], pix[i+2], pix[i+3]}
	}
	assert.Equal(t, a, at(0, 0))
	assert.Equal(t, a, at(1, 1))
	assert.Equal(t, b, at(2, 0))
	assert.Equal(t, b, at(0, 2))
	assert.Equal(t, a, at(3, 3))
}

func TestLabel(t *testing.T) {
	img, err := tutorial.Label("silky", 24, 4, color.White)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 8)
	assert.Greater(t, img.Bounds().Dy(), 8)

	var inked int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	assert.Positive(t, inked)
	assert.Zero(t, img.Pix[3], "padding corner should stay transparent")
}
