// Package gpu owns OpenGL handles on behalf of a single rendering context.
//
// Every value returned by a constructor in this package holds exactly one
// driver handle and releases it exactly once. Release is idempotent, and an
// Arena releases whatever its owner did not.
package gpu

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger replaces the package logger; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Enum is an OpenGL enumerant.
type Enum uint32

// Context issues calls against an initialized graphics context. Method names
// follow golang.org/x/mobile/gl with handles reduced to their integer values;
// zero is never a valid handle.
//
// Implementations are not safe for concurrent use and must only be called from
// the thread the context is current on.
type Context interface {
	CreateBuffer() uint32
	BindBuffer(target Enum, b uint32)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(b uint32)

	CreateVertexArray() uint32
	BindVertexArray(va uint32)
	DeleteVertexArray(va uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)

	CreateTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t uint32)
	TexImage2D(target Enum, level, width, height int, format, ty Enum, pix []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)
	DeleteTexture(t uint32)

	CreateProgram() uint32
	CreateShader(ty Enum) uint32
	ShaderSource(s uint32, src string)
	CompileShader(s uint32)
	GetShaderi(s uint32, pname Enum) int
	GetShaderInfoLog(s uint32) string
	AttachShader(p, s uint32)
	DetachShader(p, s uint32)
	LinkProgram(p uint32)
	GetProgrami(p uint32, pname Enum) int
	GetProgramInfoLog(p uint32) string
	DeleteShader(s uint32)
	DeleteProgram(p uint32)
	UseProgram(p uint32)

	GetUniformLocation(p uint32, name string) int32
	Uniform1i(loc int32, v int)
	Uniform1f(loc int32, v float32)
	Uniform2fv(loc int32, v []float32)
	Uniform3fv(loc int32, v []float32)
	Uniform4fv(loc int32, v []float32)
	UniformMatrix4fv(loc int32, m []float32)

	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	Viewport(x, y, width, height int)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)

	GetInteger(pname Enum) int
	GetError() Enum
}
