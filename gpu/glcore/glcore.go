// Package glcore implements gpu.Context over OpenGL 4.1 core profile.
package glcore

import (
	"strings"
	"unsafe"

	"dasa.cc/silky/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads GL entry points; the context must be current on the calling thread.
func Init() error { return gl.Init() }

// Context issues calls on the context current on the calling thread.
type Context struct{}

var _ gpu.Context = Context{}

func (Context) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Context) BindBuffer(target gpu.Enum, b uint32) { gl.BindBuffer(uint32(target), b) }

func (Context) BufferData(target gpu.Enum, src []byte, usage gpu.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Context) DeleteBuffer(b uint32) { gl.DeleteBuffers(1, &b) }

func (Context) CreateVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (Context) BindVertexArray(va uint32)   { gl.BindVertexArray(va) }
func (Context) DeleteVertexArray(va uint32) { gl.DeleteVertexArrays(1, &va) }

func (Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Context) VertexAttribPointer(index uint32, size int, ty gpu.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (Context) ActiveTexture(unit gpu.Enum)          { gl.ActiveTexture(uint32(unit)) }
func (Context) BindTexture(target gpu.Enum, t uint32) { gl.BindTexture(uint32(target), t) }

func (Context) TexImage2D(target gpu.Enum, level, width, height int, format, ty gpu.Enum, pix []byte) {
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(format), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (Context) TexParameteri(target, pname gpu.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Context) GenerateMipmap(target gpu.Enum) { gl.GenerateMipmap(uint32(target)) }
func (Context) DeleteTexture(t uint32)         { gl.DeleteTextures(1, &t) }

func (Context) CreateProgram() uint32           { return gl.CreateProgram() }
func (Context) CreateShader(ty gpu.Enum) uint32 { return gl.CreateShader(uint32(ty)) }

func (Context) ShaderSource(s uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
}

func (Context) CompileShader(s uint32) { gl.CompileShader(s) }

func (Context) GetShaderi(s uint32, pname gpu.Enum) int {
	var v int32
	gl.GetShaderiv(s, uint32(pname), &v)
	return int(v)
}

func (Context) GetShaderInfoLog(s uint32) string {
	var n int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(s, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (Context) DetachShader(p, s uint32) { gl.DetachShader(p, s) }
func (Context) LinkProgram(p uint32)     { gl.LinkProgram(p) }

func (Context) GetProgrami(p uint32, pname gpu.Enum) int {
	var v int32
	gl.GetProgramiv(p, uint32(pname), &v)
	return int(v)
}

func (Context) GetProgramInfoLog(p uint32) string {
	var n int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(p, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) DeleteShader(s uint32)  { gl.DeleteShader(s) }
func (Context) DeleteProgram(p uint32) { gl.DeleteProgram(p) }
func (Context) UseProgram(p uint32)    { gl.UseProgram(p) }

func (Context) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (Context) Uniform1i(loc int32, v int)     { gl.Uniform1i(loc, int32(v)) }
func (Context) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (Context) Uniform2fv(loc int32, v []float32) { gl.Uniform2fv(loc, int32(len(v)/2), &v[0]) }
func (Context) Uniform3fv(loc int32, v []float32) { gl.Uniform3fv(loc, int32(len(v)/3), &v[0]) }
func (Context) Uniform4fv(loc int32, v []float32) { gl.Uniform4fv(loc, int32(len(v)/4), &v[0]) }

func (Context) UniformMatrix4fv(loc int32, m []float32) {
	gl.UniformMatrix4fv(loc, int32(len(m)/16), false, &m[0])
}

func (Context) Clear(mask gpu.Enum)            { gl.Clear(uint32(mask)) }
func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) DrawArrays(mode gpu.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Context) DrawElements(mode gpu.Enum, count int, ty gpu.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset))
}

func (Context) GetInteger(pname gpu.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Context) GetError() gpu.Enum { return gpu.Enum(gl.GetError()) }
