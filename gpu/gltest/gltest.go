// Package gltest provides an in-memory gpu.Context that keeps enough driver
// state to observe handle lifetimes, binding points and draws without a GPU.
package gltest

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"dasa.cc/silky/gpu"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Shader is a shader object as seen by the driver.
type Shader struct {
	Type     gpu.Enum
	Source   string
	Compiled bool
	Log      string
}

// Program is a program object as seen by the driver.
type Program struct {
	Attached []uint32
	Linked   bool
	Log      string

	// Uniforms maps active uniform names to locations after a successful link.
	Uniforms map[string]int32

	// Values holds the last upload per location.
	Values map[int32]interface{}
}

// VertexArray is a vertex array object as seen by the driver.
type VertexArray struct {
	ElementBuffer uint32
	Attribs       map[uint32]Attrib
}

// Attrib is a recorded vertex attribute pointer.
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int
	Type       gpu.Enum
	Normalized bool
	Stride     int
	Offset     int
}

// Texture is a texture object as seen by the driver.
type Texture struct {
	Width, Height int
	Pix           []byte
	Params        map[gpu.Enum]int
	Mipmapped     bool
}

// Draw records one draw call.
type Draw struct {
	Mode    gpu.Enum
	Count   int
	Program uint32
	Array   uint32

	// Indices are the values read from the element buffer for DrawElements.
	Indices []uint32
}

// Primitives returns the number of primitives Draw assembles.
func (d Draw) Primitives() int {
	switch d.Mode {
	case gpu.TRIANGLES:
		return d.Count / 3
	case gpu.TRIANGLE_STRIP:
		if d.Count < 3 {
			return 0
		}
		return d.Count - 2
	case gpu.LINES:
		return d.Count / 2
	default:
		return d.Count
	}
}

// Context implements gpu.Context in memory. The zero value is not usable; use
// New.
type Context struct {
	// Exhausted makes every Create call return zero.
	Exhausted bool

	// LinkFailure, when non-empty, fails every link with this log.
	LinkFailure string

	// MaxVertexAttribs bounds attribute indices.
	MaxVertexAttribs uint32

	Buffers      map[uint32][]byte
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	VertexArrays map[uint32]*VertexArray
	Textures     map[uint32]*Texture

	Draws []Draw

	// Invalid records deletes of handles that were not live.
	Invalid []string

	next          uint32
	err           gpu.Enum
	arrayBuffer   uint32
	elementBuffer uint32 // used while no vertex array is bound
	vertexArray   uint32
	program       uint32
	activeTexture gpu.Enum
	textures      map[gpu.Enum]uint32 // TEXTURE_2D binding per unit
	clearColor    [4]float32
	viewport      [4]int
}

var _ gpu.Context = (*Context)(nil)

// New returns an empty context with a 16 attribute limit.
func New() *Context {
	return &Context{
		MaxVertexAttribs: 16,
		Buffers:          make(map[uint32][]byte),
		Shaders:          make(map[uint32]*Shader),
		Programs:         make(map[uint32]*Program),
		VertexArrays:     make(map[uint32]*VertexArray),
		Textures:         make(map[uint32]*Texture),
		activeTexture:    gpu.TEXTURE0,
		textures:         make(map[gpu.Enum]uint32),
	}
}

// Live returns the number of handles of every kind still allocated.
func (c *Context) Live() int {
	return len(c.Buffers) + len(c.Shaders) + len(c.Programs) + len(c.VertexArrays) + len(c.Textures)
}

// Handles returns the sorted live handles of kind.
func (c *Context) Handles(kind gpu.Kind) []uint32 {
	var hs []uint32
	switch kind {
	case gpu.KindBuffer:
		hs = maps.Keys(c.Buffers)
	case gpu.KindShader:
		hs = maps.Keys(c.Shaders)
	case gpu.KindProgram:
		hs = maps.Keys(c.Programs)
	case gpu.KindVertexArray:
		hs = maps.Keys(c.VertexArrays)
	case gpu.KindTexture:
		hs = maps.Keys(c.Textures)
	}
	slices.Sort(hs)
	return hs
}

// ClearColorValue returns the last clear color set.
func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

// ViewportValue returns the last viewport set.
func (c *Context) ViewportValue() [4]int { return c.viewport }

func (c *Context) setError(code gpu.Enum) {
	if c.err == gpu.NO_ERROR {
		c.err = code
	}
}

func (c *Context) alloc() uint32 {
	if c.Exhausted {
		return 0
	}
	c.next++
	return c.next
}

func (c *Context) invalid(op string, h uint32) {
	if h != 0 {
		c.Invalid = append(c.Invalid, fmt.Sprintf("%s(%d)", op, h))
	}
}

func (c *Context) CreateBuffer() uint32 {
	h := c.alloc()
	if h != 0 {
		c.Buffers[h] = nil
	}
	return h
}

func (c *Context) BindBuffer(target gpu.Enum, b uint32) {
	if _, ok := c.Buffers[b]; b != 0 && !ok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	switch target {
	case gpu.ARRAY_BUFFER:
		c.arrayBuffer = b
	case gpu.ELEMENT_ARRAY_BUFFER:
		if va, ok := c.VertexArrays[c.vertexArray]; ok {
			va.ElementBuffer = b
		} else {
			c.elementBuffer = b
		}
	default:
		c.setError(gpu.INVALID_ENUM)
	}
}

func (c *Context) boundBuffer(target gpu.Enum) uint32 {
	switch target {
	case gpu.ARRAY_BUFFER:
		return c.arrayBuffer
	case gpu.ELEMENT_ARRAY_BUFFER:
		if va, ok := c.VertexArrays[c.vertexArray]; ok {
			return va.ElementBuffer
		}
		return c.elementBuffer
	}
	return 0
}

func (c *Context) BufferData(target gpu.Enum, src []byte, usage gpu.Enum) {
	b := c.boundBuffer(target)
	if b == 0 {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	c.Buffers[b] = append([]byte(nil), src...)
}

func (c *Context) DeleteBuffer(b uint32) {
	if _, ok := c.Buffers[b]; !ok {
		c.invalid("DeleteBuffer", b)
		return
	}
	delete(c.Buffers, b)
	if c.arrayBuffer == b {
		c.arrayBuffer = 0
	}
	if c.elementBuffer == b {
		c.elementBuffer = 0
	}
	if va, ok := c.VertexArrays[c.vertexArray]; ok && va.ElementBuffer == b {
		va.ElementBuffer = 0
	}
}

func (c *Context) CreateVertexArray() uint32 {
	h := c.alloc()
	if h != 0 {
		c.VertexArrays[h] = &VertexArray{Attribs: make(map[uint32]Attrib)}
	}
	return h
}

func (c *Context) BindVertexArray(va uint32) {
	if _, ok := c.VertexArrays[va]; va != 0 && !ok {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	c.vertexArray = va
}

func (c *Context) DeleteVertexArray(va uint32) {
	if _, ok := c.VertexArrays[va]; !ok {
		c.invalid("DeleteVertexArray", va)
		return
	}
	delete(c.VertexArrays, va)
	if c.vertexArray == va {
		c.vertexArray = 0
	}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	va, ok := c.VertexArrays[c.vertexArray]
	switch {
	case index >= c.MaxVertexAttribs:
		c.setError(gpu.INVALID_VALUE)
	case !ok:
		c.setError(gpu.INVALID_OPERATION)
	default:
		a := va.Attribs[index]
		a.Enabled = true
		va.Attribs[index] = a
	}
}

func (c *Context) VertexAttribPointer(index uint32, size int, ty gpu.Enum, normalized bool, stride, offset int) {
	va, ok := c.VertexArrays[c.vertexArray]
	switch {
	case index >= c.MaxVertexAttribs, size < 1, size > 4, stride < 0:
		c.setError(gpu.INVALID_VALUE)
	case !ok, c.arrayBuffer == 0:
		c.setError(gpu.INVALID_OPERATION)
	default:
		a := va.Attribs[index]
		a.Buffer = c.arrayBuffer
		a.Size, a.Type, a.Normalized = size, ty, normalized
		a.Stride, a.Offset = stride, offset
		va.Attribs[index] = a
	}
}

func (c *Context) CreateTexture() uint32 {
	h := c.alloc()
	if h != 0 {
		c.Textures[h] = &Texture{Params: make(map[gpu.Enum]int)}
	}
	return h
}

func (c *Context) ActiveTexture(unit gpu.Enum) {
	if unit < gpu.TEXTURE0 || unit > gpu.TEXTURE0+31 {
		c.setError(gpu.INVALID_ENUM)
		return
	}
	c.activeTexture = unit
}

func (c *Context) BindTexture(target gpu.Enum, t uint32) {
	if target != gpu.TEXTURE_2D {
		c.setError(gpu.INVALID_ENUM)
		return
	}
	if _, ok := c.Textures[t]; t != 0 && !ok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	c.textures[c.activeTexture] = t
}

func (c *Context) boundTexture() *Texture {
	tex, ok := c.Textures[c.textures[c.activeTexture]]
	if !ok {
		c.setError(gpu.INVALID_OPERATION)
		return nil
	}
	return tex
}

func (c *Context) TexImage2D(target gpu.Enum, level, width, height int, format, ty gpu.Enum, pix []byte) {
	tex := c.boundTexture()
	if tex == nil {
		return
	}
	if level == 0 {
		tex.Width, tex.Height = width, height
		tex.Pix = append([]byte(nil), pix[:4*width*height]...)
	}
}

func (c *Context) TexParameteri(target, pname gpu.Enum, param int) {
	if tex := c.boundTexture(); tex != nil {
		tex.Params[pname] = param
	}
}

func (c *Context) GenerateMipmap(target gpu.Enum) {
	if tex := c.boundTexture(); tex != nil {
		tex.Mipmapped = true
	}
}

func (c *Context) DeleteTexture(t uint32) {
	if _, ok := c.Textures[t]; !ok {
		c.invalid("DeleteTexture", t)
		return
	}
	delete(c.Textures, t)
	for unit, bound := range c.textures {
		if bound == t {
			c.textures[unit] = 0
		}
	}
}

func (c *Context) CreateProgram() uint32 {
	h := c.alloc()
	if h != 0 {
		c.Programs[h] = &Program{Values: make(map[int32]interface{})}
	}
	return h
}

func (c *Context) CreateShader(ty gpu.Enum) uint32 {
	if ty != gpu.VERTEX_SHADER && ty != gpu.FRAGMENT_SHADER {
		c.setError(gpu.INVALID_ENUM)
		return 0
	}
	h := c.alloc()
	if h != 0 {
		c.Shaders[h] = &Shader{Type: ty}
	}
	return h
}

func (c *Context) ShaderSource(s uint32, src string) {
	if shd, ok := c.Shaders[s]; ok {
		shd.Source = src
	} else {
		c.setError(gpu.INVALID_VALUE)
	}
}

var mainDecl = regexp.MustCompile(`void\s+main\s*\(\s*(void)?\s*\)\s*\{`)

// CompileShader fails sources that lack a main function or contain an #error
// directive, with a log naming the offending line.
func (c *Context) CompileShader(s uint32) {
	shd, ok := c.Shaders[s]
	if !ok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	shd.Compiled, shd.Log = true, ""
	for i, line := range strings.Split(shd.Source, "\n") {
		if t := strings.TrimSpace(line); strings.HasPrefix(t, "#error") {
			shd.Compiled = false
			shd.Log = fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(strings.TrimPrefix(t, "#error")))
			return
		}
	}
	if !mainDecl.MatchString(shd.Source) {
		shd.Compiled = false
		shd.Log = "0:1(1): error: syntax error, missing main function"
	}
}

func (c *Context) GetShaderi(s uint32, pname gpu.Enum) int {
	shd, ok := c.Shaders[s]
	if !ok {
		c.setError(gpu.INVALID_VALUE)
		return 0
	}
	if pname == gpu.COMPILE_STATUS && shd.Compiled {
		return 1
	}
	return 0
}

func (c *Context) GetShaderInfoLog(s uint32) string {
	if shd, ok := c.Shaders[s]; ok {
		return shd.Log
	}
	return ""
}

func (c *Context) AttachShader(p, s uint32) {
	prg, ok := c.Programs[p]
	if _, sok := c.Shaders[s]; !ok || !sok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	prg.Attached = append(prg.Attached, s)
}

func (c *Context) DetachShader(p, s uint32) {
	prg, ok := c.Programs[p]
	if !ok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	if i := slices.Index(prg.Attached, s); i >= 0 {
		prg.Attached = slices.Delete(prg.Attached, i, i+1)
	} else {
		c.setError(gpu.INVALID_OPERATION)
	}
}

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+(\s+\w+)?\s+(\w+)\s*;`)

// LinkProgram links when one compiled shader of each stage is attached and
// assigns locations to declared uniforms in order of appearance.
func (c *Context) LinkProgram(p uint32) {
	prg, ok := c.Programs[p]
	if !ok {
		c.setError(gpu.INVALID_VALUE)
		return
	}
	prg.Linked, prg.Log, prg.Uniforms = false, "", nil

	stages := make(map[gpu.Enum]bool)
	var srcs []string
	for _, s := range prg.Attached {
		shd := c.Shaders[s]
		if !shd.Compiled {
			prg.Log = "error: linking with uncompiled shader"
			return
		}
		stages[shd.Type] = true
		srcs = append(srcs, shd.Source)
	}
	switch {
	case c.LinkFailure != "":
		prg.Log = c.LinkFailure
		return
	case !stages[gpu.VERTEX_SHADER] || !stages[gpu.FRAGMENT_SHADER]:
		prg.Log = "error: program lacks a vertex or fragment shader"
		return
	}

	prg.Linked = true
	prg.Uniforms = make(map[string]int32)
	for _, src := range srcs {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := prg.Uniforms[m[2]]; !ok {
				prg.Uniforms[m[2]] = int32(len(prg.Uniforms))
			}
		}
	}
}

func (c *Context) GetProgrami(p uint32, pname gpu.Enum) int {
	prg, ok := c.Programs[p]
	if !ok {
		c.setError(gpu.INVALID_VALUE)
		return 0
	}
	if pname == gpu.LINK_STATUS && prg.Linked {
		return 1
	}
	return 0
}

func (c *Context) GetProgramInfoLog(p uint32) string {
	if prg, ok := c.Programs[p]; ok {
		return prg.Log
	}
	return ""
}

func (c *Context) DeleteShader(s uint32) {
	if _, ok := c.Shaders[s]; !ok {
		c.invalid("DeleteShader", s)
		return
	}
	delete(c.Shaders, s)
	for _, prg := range c.Programs {
		if i := slices.Index(prg.Attached, s); i >= 0 {
			prg.Attached = slices.Delete(prg.Attached, i, i+1)
		}
	}
}

func (c *Context) DeleteProgram(p uint32) {
	if _, ok := c.Programs[p]; !ok {
		c.invalid("DeleteProgram", p)
		return
	}
	delete(c.Programs, p)
	if c.program == p {
		c.program = 0
	}
}

func (c *Context) UseProgram(p uint32) {
	if prg, ok := c.Programs[p]; p != 0 && (!ok || !prg.Linked) {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	c.program = p
}

func (c *Context) GetUniformLocation(p uint32, name string) int32 {
	prg, ok := c.Programs[p]
	if !ok || !prg.Linked {
		c.setError(gpu.INVALID_OPERATION)
		return -1
	}
	if loc, ok := prg.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) upload(loc int32, v interface{}) {
	prg, ok := c.Programs[c.program]
	if !ok {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	prg.Values[loc] = v
}

func (c *Context) Uniform1i(loc int32, v int)     { c.upload(loc, v) }
func (c *Context) Uniform1f(loc int32, v float32) { c.upload(loc, v) }

func (c *Context) Uniform2fv(loc int32, v []float32) { c.upload(loc, slices.Clone(v)) }
func (c *Context) Uniform3fv(loc int32, v []float32) { c.upload(loc, slices.Clone(v)) }
func (c *Context) Uniform4fv(loc int32, v []float32) { c.upload(loc, slices.Clone(v)) }

func (c *Context) UniformMatrix4fv(loc int32, m []float32) { c.upload(loc, slices.Clone(m)) }

func (c *Context) Clear(mask gpu.Enum)            {}
func (c *Context) ClearColor(r, g, b, a float32) { c.clearColor = [4]float32{r, g, b, a} }

func (c *Context) Viewport(x, y, width, height int) { c.viewport = [4]int{x, y, width, height} }

func (c *Context) DrawArrays(mode gpu.Enum, first, count int) {
	if c.program == 0 || c.VertexArrays[c.vertexArray] == nil {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	c.Draws = append(c.Draws, Draw{Mode: mode, Count: count, Program: c.program, Array: c.vertexArray})
}

// DrawElements records the index values read from the bound element buffer.
func (c *Context) DrawElements(mode gpu.Enum, count int, ty gpu.Enum, offset int) {
	va, ok := c.VertexArrays[c.vertexArray]
	if c.program == 0 || !ok || va.ElementBuffer == 0 {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	var size int
	switch ty {
	case gpu.UNSIGNED_BYTE:
		size = 1
	case gpu.UNSIGNED_SHORT:
		size = 2
	case gpu.UNSIGNED_INT:
		size = 4
	default:
		c.setError(gpu.INVALID_ENUM)
		return
	}
	data := c.Buffers[va.ElementBuffer]
	if offset+count*size > len(data) {
		c.setError(gpu.INVALID_OPERATION)
		return
	}
	indices := make([]uint32, count)
	for i := range indices {
		b := data[offset+i*size:]
		switch size {
		case 1:
			indices[i] = uint32(b[0])
		case 2:
			indices[i] = uint32(binary.LittleEndian.Uint16(b))
		case 4:
			indices[i] = binary.LittleEndian.Uint32(b)
		}
	}
	c.Draws = append(c.Draws, Draw{Mode: mode, Count: count, Program: c.program, Array: c.vertexArray, Indices: indices})
}

// GetInteger answers binding queries.
func (c *Context) GetInteger(pname gpu.Enum) int {
	switch pname {
	case gpu.ARRAY_BUFFER_BINDING:
		return int(c.arrayBuffer)
	case gpu.ELEMENT_ARRAY_BUFFER_BINDING:
		return int(c.boundBuffer(gpu.ELEMENT_ARRAY_BUFFER))
	case gpu.VERTEX_ARRAY_BINDING:
		return int(c.vertexArray)
	case gpu.CURRENT_PROGRAM:
		return int(c.program)
	case gpu.TEXTURE_BINDING_2D:
		return int(c.textures[c.activeTexture])
	case gpu.ACTIVE_TEXTURE:
		return int(c.activeTexture)
	case gpu.MAX_VERTEX_ATTRIBS:
		return int(c.MaxVertexAttribs)
	}
	c.setError(gpu.INVALID_ENUM)
	return 0
}

// GetError returns and clears the first error recorded since the last call.
func (c *Context) GetError() gpu.Enum {
	err := c.err
	c.err = gpu.NO_ERROR
	return err
}
