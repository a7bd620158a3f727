// Package tutorial holds the demo scenes: a triangle, two triangles, a
// textured quad and a quad mixing two textures.
package tutorial

import (
	"fmt"
	"image/color"

	"dasa.cc/silky/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/exp/slices"
)

var logger = zap.NewNop()

// SetLogger sets the logger scenes report loads and input on; nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Input is a discrete user action delivered to a scene.
type Input int

const (
	InputIncrease Input = iota + 1
	InputDecrease
)

func (in Input) String() string {
	switch in {
	case InputIncrease:
		return "increase"
	case InputDecrease:
		return "decrease"
	}
	return fmt.Sprintf("Input(%d)", int(in))
}

// Scene is a demo driven by a host loop. Load runs once a context is current;
// Release frees everything Load allocated and may be called more than once.
type Scene interface {
	Load(ctx gpu.Context) error
	Update(dt float64)
	Render(dt float64) error
	Resize(width, height int)
	Input(in Input)
	Release()
}

// Options configure scene resources. Empty paths select built-in content.
type Options struct {
	// GLSL is the version line of built-in shaders, such as "330 core" or
	// "300 es".
	GLSL string

	// VertexShader and FragmentShader name shader files replacing the
	// built-in sources. Both must be set to take effect.
	VertexShader, FragmentShader string

	// Assets reads the shader names from app assets instead of files.
	Assets bool

	// Texture names the image drawn by the quad scenes.
	Texture string

	// Overlay names the second image of the blend scene. Without it, Label is
	// rendered as text.
	Overlay string
	Label   string

	// Blend is the starting mix factor of the blend scene.
	Blend float32

	// MaxTextureSize bounds loaded image dimensions; 0 leaves images as is.
	MaxTextureSize int
}

var scenes = map[string]func(Options) Scene{
	"triangle":      func(o Options) Scene { return NewTriangle(o) },
	"two-triangles": func(o Options) Scene { return NewTwoTriangles(o) },
	"quad":          func(o Options) Scene { return NewQuad(o) },
	"blend":         func(o Options) Scene { return NewBlendQuad(o) },
}

// Names returns the scene names accepted by New, sorted.
func Names() []string {
	names := maps.Keys(scenes)
	slices.Sort(names)
	return names
}

// New returns the named scene.
func New(name string, opts Options) (Scene, error) {
	fn, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("tutorial: unknown scene %q, have %v", name, Names())
	}
	return fn(opts), nil
}

// attrib describes one vertex attribute in float elements.
type attrib struct {
	index      uint32
	components int
	offset     int
}

// mesh holds the program and geometry shared by every scene. Everything it
// allocates is owned by arena.
type mesh struct {
	opts  Options
	ctx   gpu.Context
	arena gpu.Arena

	prg    *gpu.Program
	va     *gpu.VertexArray
	count  int
	aspect float32
}

// load builds the program from vert and frag, then uploads vertices of stride
// floats and indices into a vertex array described by attrs.
func (m *mesh) load(ctx gpu.Context, vert, frag string, vertices []float32, stride int, indices []uint32, attrs ...attrib) (err error) {
	m.ctx = ctx
	m.aspect = 1
	defer func() {
		if err != nil {
			m.arena.Release()
		}
	}()

	if m.prg, err = buildProgram(ctx, m.opts, vert, frag); err != nil {
		return err
	}
	m.arena.Own(m.prg)

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, vertices)
	if err != nil {
		return err
	}
	m.arena.Own(vbo)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, indices)
	if err != nil {
		return err
	}
	m.arena.Own(ebo)

	if m.va, err = gpu.NewVertexArray[float32, uint32](ctx, vbo, ebo); err != nil {
		return err
	}
	m.arena.Own(m.va)
	for _, a := range attrs {
		if err := m.va.DescribeAttribute(a.index, a.components, gpu.FLOAT, stride, a.offset); err != nil {
			return err
		}
	}
	m.count = len(indices)

	ctx.ClearColor(RGBA(colornames.BlueGrey500))
	return nil
}

// RGBA returns c as normalized float components.
func RGBA(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

func (m *mesh) Update(dt float64) {}

func (m *mesh) Input(in Input) {}

func (m *mesh) Resize(width, height int) {
	if width > 0 && height > 0 {
		m.aspect = float32(width) / float32(height)
	}
}

// projection keeps unit geometry square whatever the window shape.
func (m *mesh) projection() mgl32.Mat4 {
	return mgl32.Ortho2D(-m.aspect, m.aspect, -1, 1)
}

// begin clears the frame and puts the program in use.
func (m *mesh) begin() {
	m.ctx.Clear(gpu.COLOR_BUFFER_BIT)
	m.prg.Use()
}

// draw issues the indexed triangles and reports any driver error of the frame.
func (m *mesh) draw() error {
	m.va.Draw(gpu.TRIANGLES, m.count)
	return gpu.CheckError(m.ctx, "draw")
}

func (m *mesh) Release() {
	m.arena.Release()
	m.prg, m.va, m.count = nil, nil, 0
}

// texture loads path, or uploads fallback pixels when path is empty. The
// texture is owned by the mesh arena.
func (m *mesh) texture(path string, fallback func() (*gpu.Texture, error)) (*gpu.Texture, error) {
	var (
		tex *gpu.Texture
		err error
	)
	if path != "" {
		var opts []gpu.TextureOption
		if m.opts.MaxTextureSize > 0 {
			opts = append(opts, gpu.MaxSize(m.opts.MaxTextureSize))
		}
		tex, err = gpu.LoadTexture(m.ctx, path, opts...)
	} else {
		tex, err = fallback()
	}
	if err != nil {
		return nil, err
	}
	m.arena.Own(tex)
	return tex, nil
}
