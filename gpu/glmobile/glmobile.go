// Package glmobile implements gpu.Context over golang.org/x/mobile/gl.
//
// Vertex array objects require an OpenGL ES 3 context.
package glmobile

import (
	"errors"

	"dasa.cc/silky/gpu"
	"golang.org/x/mobile/gl"
)

// ErrNoES3 is returned by With when the draw context lacks ES 3 entry points.
var ErrNoES3 = errors.New("glmobile: draw context does not support OpenGL ES 3")

// Context adapts a gl.Context3.
type Context struct {
	gl.Context3
}

// With wraps the DrawContext delivered by a lifecycle event.
func With(drawContext interface{}) (*Context, error) {
	ctx, ok := drawContext.(gl.Context3)
	if !ok {
		return nil, ErrNoES3
	}
	return &Context{ctx}, nil
}

var _ gpu.Context = (*Context)(nil)

func (c *Context) CreateBuffer() uint32 { return c.Context3.CreateBuffer().Value }

func (c *Context) BindBuffer(target gpu.Enum, b uint32) {
	c.Context3.BindBuffer(gl.Enum(target), gl.Buffer{Value: b})
}

func (c *Context) BufferData(target gpu.Enum, src []byte, usage gpu.Enum) {
	c.Context3.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (c *Context) DeleteBuffer(b uint32) { c.Context3.DeleteBuffer(gl.Buffer{Value: b}) }

func (c *Context) CreateVertexArray() uint32 { return c.Context3.CreateVertexArray().Value }

func (c *Context) BindVertexArray(va uint32) {
	c.Context3.BindVertexArray(gl.VertexArray{Value: va})
}

func (c *Context) DeleteVertexArray(va uint32) {
	c.Context3.DeleteVertexArray(gl.VertexArray{Value: va})
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.Context3.EnableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (c *Context) VertexAttribPointer(index uint32, size int, ty gpu.Enum, normalized bool, stride, offset int) {
	c.Context3.VertexAttribPointer(gl.Attrib{Value: uint(index)}, size, gl.Enum(ty), normalized, stride, offset)
}

func (c *Context) CreateTexture() uint32 { return c.Context3.CreateTexture().Value }

func (c *Context) ActiveTexture(unit gpu.Enum) { c.Context3.ActiveTexture(gl.Enum(unit)) }

func (c *Context) BindTexture(target gpu.Enum, t uint32) {
	c.Context3.BindTexture(gl.Enum(target), gl.Texture{Value: t})
}

func (c *Context) TexImage2D(target gpu.Enum, level, width, height int, format, ty gpu.Enum, pix []byte) {
	c.Context3.TexImage2D(gl.Enum(target), level, int(format), width, height, gl.Enum(format), gl.Enum(ty), pix)
}

func (c *Context) TexParameteri(target, pname gpu.Enum, param int) {
	c.Context3.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func (c *Context) GenerateMipmap(target gpu.Enum) { c.Context3.GenerateMipmap(gl.Enum(target)) }
func (c *Context) DeleteTexture(t uint32)         { c.Context3.DeleteTexture(gl.Texture{Value: t}) }

func (c *Context) CreateProgram() uint32 { return c.Context3.CreateProgram().Value }

func (c *Context) CreateShader(ty gpu.Enum) uint32 {
	return c.Context3.CreateShader(gl.Enum(ty)).Value
}

func (c *Context) ShaderSource(s uint32, src string) {
	c.Context3.ShaderSource(gl.Shader{Value: s}, src)
}

func (c *Context) CompileShader(s uint32) { c.Context3.CompileShader(gl.Shader{Value: s}) }

func (c *Context) GetShaderi(s uint32, pname gpu.Enum) int {
	return c.Context3.GetShaderi(gl.Shader{Value: s}, gl.Enum(pname))
}

func (c *Context) GetShaderInfoLog(s uint32) string {
	return c.Context3.GetShaderInfoLog(gl.Shader{Value: s})
}

func (c *Context) AttachShader(p, s uint32) {
	c.Context3.AttachShader(program(p), gl.Shader{Value: s})
}

func (c *Context) DetachShader(p, s uint32) {
	c.Context3.DetachShader(program(p), gl.Shader{Value: s})
}

func (c *Context) LinkProgram(p uint32) { c.Context3.LinkProgram(program(p)) }

func (c *Context) GetProgrami(p uint32, pname gpu.Enum) int {
	return c.Context3.GetProgrami(program(p), gl.Enum(pname))
}

func (c *Context) GetProgramInfoLog(p uint32) string {
	return c.Context3.GetProgramInfoLog(program(p))
}

func (c *Context) DeleteShader(s uint32)  { c.Context3.DeleteShader(gl.Shader{Value: s}) }
func (c *Context) DeleteProgram(p uint32) { c.Context3.DeleteProgram(program(p)) }
func (c *Context) UseProgram(p uint32)    { c.Context3.UseProgram(program(p)) }

func (c *Context) GetUniformLocation(p uint32, name string) int32 {
	return c.Context3.GetUniformLocation(program(p), name).Value
}

func (c *Context) Uniform1i(loc int32, v int)     { c.Context3.Uniform1i(gl.Uniform{Value: loc}, v) }
func (c *Context) Uniform1f(loc int32, v float32) { c.Context3.Uniform1f(gl.Uniform{Value: loc}, v) }

func (c *Context) Uniform2fv(loc int32, v []float32) { c.Context3.Uniform2fv(gl.Uniform{Value: loc}, v) }
func (c *Context) Uniform3fv(loc int32, v []float32) { c.Context3.Uniform3fv(gl.Uniform{Value: loc}, v) }
func (c *Context) Uniform4fv(loc int32, v []float32) { c.Context3.Uniform4fv(gl.Uniform{Value: loc}, v) }

func (c *Context) UniformMatrix4fv(loc int32, m []float32) {
	c.Context3.UniformMatrix4fv(gl.Uniform{Value: loc}, m)
}

func (c *Context) Clear(mask gpu.Enum) { c.Context3.Clear(gl.Enum(mask)) }

func (c *Context) DrawArrays(mode gpu.Enum, first, count int) {
	c.Context3.DrawArrays(gl.Enum(mode), first, count)
}

func (c *Context) DrawElements(mode gpu.Enum, count int, ty gpu.Enum, offset int) {
	c.Context3.DrawElements(gl.Enum(mode), count, gl.Enum(ty), offset)
}

func (c *Context) GetInteger(pname gpu.Enum) int { return c.Context3.GetInteger(gl.Enum(pname)) }
func (c *Context) GetError() gpu.Enum             { return gpu.Enum(c.Context3.GetError()) }

// program reconstructs a gl.Program; Init marks it as created by the driver.
func program(p uint32) gl.Program { return gl.Program{Init: p != 0, Value: p} }
