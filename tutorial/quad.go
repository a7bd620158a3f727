package tutorial

import (
	"image/color"

	"dasa.cc/silky/gpu"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/colornames"
)

// quadVertices are position xyz then texture uv per corner, counter-clockwise
// from the top right.
var quadVertices = []float32{
	0.5, 0.5, 0, 1, 1,
	0.5, -0.5, 0, 1, 0,
	-0.5, -0.5, 0, 0, 0,
	-0.5, 0.5, 0, 0, 1,
}

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

var quadAttribs = []attrib{
	{index: 0, components: 3, offset: 0},
	{index: 1, components: 2, offset: 3},
}

const checkerSize, checkerCell = 64, 8

var (
	checkerLight = colornames.Grey100
	checkerDark  = colornames.BlueGrey700
)

func checkerTexture(ctx gpu.Context) func() (*gpu.Texture, error) {
	return func() (*gpu.Texture, error) {
		pix := Checkerboard(checkerSize, checkerSize, checkerCell, checkerLight, checkerDark)
		return gpu.NewTextureRGBA(ctx, pix, checkerSize, checkerSize)
	}
}

// Quad draws a textured square kept square by the projection.
type Quad struct {
	mesh
	tex *gpu.Texture
}

func NewQuad(opts Options) *Quad { return &Quad{mesh: mesh{opts: opts}} }

func (s *Quad) Load(ctx gpu.Context) (err error) {
	if err := s.load(ctx, textureVert, textureFrag, quadVertices, 5, quadIndices, quadAttribs...); err != nil {
		return err
	}
	if s.tex, err = s.texture(s.opts.Texture, checkerTexture(ctx)); err != nil {
		s.Release()
		return err
	}
	logger.Debug("scene loaded", zap.String("scene", "quad"), zap.String("texture", s.opts.Texture))
	return nil
}

func (s *Quad) Render(dt float64) error {
	s.begin()
	if err := s.prg.SetUniform("uProjection", s.projection()); err != nil {
		return err
	}
	s.tex.Bind(0)
	if err := s.prg.SetUniform("uTexture0", 0); err != nil {
		return err
	}
	return s.draw()
}

// BlendQuad draws a quad mixing two textures by a factor the user steps.
type BlendQuad struct {
	mesh
	base, overlay *gpu.Texture
	blend         Blend
}

func NewBlendQuad(opts Options) *BlendQuad {
	return &BlendQuad{mesh: mesh{opts: opts}, blend: NewBlend(opts.Blend)}
}

func (s *BlendQuad) Load(ctx gpu.Context) (err error) {
	if err := s.load(ctx, textureVert, blendFrag, quadVertices, 5, quadIndices, quadAttribs...); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			s.Release()
		}
	}()
	if s.base, err = s.texture(s.opts.Texture, checkerTexture(ctx)); err != nil {
		return err
	}
	s.overlay, err = s.texture(s.opts.Overlay, func() (*gpu.Texture, error) {
		text := s.opts.Label
		if text == "" {
			text = "silky"
		}
		img, err := Label(text, 48, 8, color.White)
		if err != nil {
			return nil, err
		}
		return gpu.NewTexture(ctx, img)
	})
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", zap.String("scene", "blend"), zap.Float32("blend", s.blend.Value()))
	return nil
}

// Blend returns the current mix factor.
func (s *BlendQuad) Blend() float32 { return s.blend.Value() }

func (s *BlendQuad) Input(in Input) {
	switch in {
	case InputIncrease:
		s.blend.Increase()
	case InputDecrease:
		s.blend.Decrease()
	default:
		return
	}
	logger.Debug("blend", zap.Stringer("input", in), zap.Float32("value", s.blend.Value()))
}

func (s *BlendQuad) Render(dt float64) error {
	s.begin()
	if err := s.prg.SetUniform("uProjection", s.projection()); err != nil {
		return err
	}
	s.base.Bind(0)
	s.overlay.Bind(1)
	if err := s.prg.SetUniform("uTexture0", 0); err != nil {
		return err
	}
	if err := s.prg.SetUniform("uTexture1", 1); err != nil {
		return err
	}
	if err := s.prg.SetUniform("uBlend", s.blend.Value()); err != nil {
		return err
	}
	return s.draw()
}
