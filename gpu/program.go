package gpu

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/asset"
)

// Stage is one compilable unit of a program.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	if s == FragmentStage {
		return "fragment shader"
	}
	return "vertex shader"
}

func (s Stage) shaderType() Enum {
	if s == FragmentStage {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// VertSource yields vertex shader source code.
type VertSource interface {
	Source() (VertSrc, error)
}

// FragSource yields fragment shader source code.
type FragSource interface {
	Source() (FragSrc, error)
}

// VertSrc is vertex shader source code.
type VertSrc string

func (src VertSrc) Source() (VertSrc, error) { return src, nil }

// FragSrc is fragment shader source code.
type FragSrc string

func (src FragSrc) Source() (FragSrc, error) { return src, nil }

// VertFile is a filesystem path to vertex shader source code.
type VertFile string

// Source reads the named file.
func (name VertFile) Source() (VertSrc, error) {
	b, err := os.ReadFile(string(name))
	return VertSrc(b), err
}

// FragFile is a filesystem path to fragment shader source code.
type FragFile string

// Source reads the named file.
func (name FragFile) Source() (FragSrc, error) {
	b, err := os.ReadFile(string(name))
	return FragSrc(b), err
}

// VertAsset is a filename in assets containing vertex shader source code.
type VertAsset string

// Source reads the named asset.
func (name VertAsset) Source() (VertSrc, error) {
	b, err := readAsset(string(name))
	return VertSrc(b), err
}

// FragAsset is a filename in assets containing fragment shader source code.
type FragAsset string

// Source reads the named asset.
func (name FragAsset) Source() (FragSrc, error) {
	b, err := readAsset(string(name))
	return FragSrc(b), err
}

func readAsset(name string) ([]byte, error) {
	f, err := asset.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Program owns a linked shader program.
type Program struct {
	object
}

// LoadProgram reads both stages, from files, assets or memory, and builds a
// program.
func LoadProgram(ctx Context, vert VertSource, frag FragSource) (*Program, error) {
	vsrc, err := vert.Source()
	if err != nil {
		return nil, fmt.Errorf("gpu: read vertex shader: %w", err)
	}
	fsrc, err := frag.Source()
	if err != nil {
		return nil, fmt.Errorf("gpu: read fragment shader: %w", err)
	}
	return NewProgram(ctx, vsrc, fsrc)
}

// NewProgram compiles both stages and links them. Stage handles never outlive
// the call, and on error no handle created here remains allocated.
func NewProgram(ctx Context, vsrc VertSrc, fsrc FragSrc) (*Program, error) {
	obj, err := newObject(ctx, KindProgram, ctx.CreateProgram, ctx.DeleteProgram)
	if err != nil {
		return nil, err
	}
	prg := &Program{object: obj}

	vshd, err := compile(ctx, VertexStage, string(vsrc))
	if err != nil {
		prg.Release()
		return nil, err
	}
	defer ctx.DeleteShader(vshd)

	fshd, err := compile(ctx, FragmentStage, string(fsrc))
	if err != nil {
		prg.Release()
		return nil, err
	}
	defer ctx.DeleteShader(fshd)

	ctx.AttachShader(prg.handle, vshd)
	ctx.AttachShader(prg.handle, fshd)
	ctx.LinkProgram(prg.handle)
	ok := ctx.GetProgrami(prg.handle, LINK_STATUS) != 0
	ctx.DetachShader(prg.handle, vshd)
	ctx.DetachShader(prg.handle, fshd)

	if !ok {
		msg := ctx.GetProgramInfoLog(prg.handle)
		prg.Release()
		return nil, &LinkError{Log: msg}
	}
	return prg, nil
}

func compile(ctx Context, stage Stage, src string) (uint32, error) {
	shd := ctx.CreateShader(stage.shaderType())
	if shd == 0 {
		return 0, &AllocationError{Kind: KindShader}
	}
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == 0 {
		msg := ctx.GetShaderInfoLog(shd)
		ctx.DeleteShader(shd)
		logger.Debug("compile failed", zap.Stringer("stage", stage), zap.String("log", msg))
		return 0, &CompileError{Stage: stage, Log: msg}
	}
	return shd, nil
}

// Use installs prg as part of current rendering state.
func (prg *Program) Use() { prg.ctx.UseProgram(prg.handle) }

// HasUniform reports whether name is an active uniform of prg.
func (prg *Program) HasUniform(name string) bool {
	return prg.ctx.GetUniformLocation(prg.handle, name) >= 0
}

// SetUniform uploads value to the named uniform of prg, which must be in use.
// Unknown names fail with UniformNotFoundError and upload nothing.
func (prg *Program) SetUniform(name string, value interface{}) error {
	loc := prg.ctx.GetUniformLocation(prg.handle, name)
	if loc < 0 {
		return &UniformNotFoundError{Name: name}
	}

	ctx := prg.ctx
	switch v := value.(type) {
	case int:
		ctx.Uniform1i(loc, v)
	case int32:
		ctx.Uniform1i(loc, int(v))
	case bool:
		if v {
			ctx.Uniform1i(loc, 1)
		} else {
			ctx.Uniform1i(loc, 0)
		}
	case float32:
		ctx.Uniform1f(loc, v)
	case float64:
		ctx.Uniform1f(loc, float32(v))
	case f32.Vec2:
		ctx.Uniform2fv(loc, v[:])
	case f32.Vec3:
		ctx.Uniform3fv(loc, v[:])
	case f32.Vec4:
		ctx.Uniform4fv(loc, v[:])
	case f32.Mat4:
		ctx.UniformMatrix4fv(loc, v[:])
	case mgl32.Vec2:
		ctx.Uniform2fv(loc, v[:])
	case mgl32.Vec3:
		ctx.Uniform3fv(loc, v[:])
	case mgl32.Vec4:
		ctx.Uniform4fv(loc, v[:])
	case mgl32.Mat4:
		ctx.UniformMatrix4fv(loc, v[:])
	default:
		return fmt.Errorf("gpu: uniform %q: unsupported value type %T", name, value)
	}
	return nil
}
