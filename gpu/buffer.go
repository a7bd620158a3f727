package gpu

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Element is a fixed-size value that can be uploaded verbatim.
type Element interface {
	constraints.Integer | constraints.Float
}

// BufferKind selects the binding target of a Buffer.
type BufferKind int

const (
	VertexData BufferKind = iota
	IndexData
)

// Target returns the binding point of k.
func (k BufferKind) Target() Enum {
	if k == IndexData {
		return ELEMENT_ARRAY_BUFFER
	}
	return ARRAY_BUFFER
}

func (k BufferKind) String() string {
	if k == IndexData {
		return "index"
	}
	return "vertex"
}

// Buffer owns a buffer object.
type Buffer struct {
	object
	kind BufferKind
}

// NewBuffer creates a buffer of kind and uploads data as static draw data.
// Bytes are copied in host layout and byte order.
func NewBuffer[T Element](ctx Context, kind BufferKind, data []T) (*Buffer, error) {
	return NewBufferBytes(ctx, kind, bytesOf(data))
}

// NewBufferBytes is NewBuffer for data already laid out as bytes, such as
// interleaved vertex structs.
//
// The element array binding belongs to the bound vertex array, so index data
// is uploaded with vertex array 0 bound and the previously bound vertex array
// must be bound again before use.
func NewBufferBytes(ctx Context, kind BufferKind, data []byte) (*Buffer, error) {
	obj, err := newObject(ctx, KindBuffer, ctx.CreateBuffer, ctx.DeleteBuffer)
	if err != nil {
		return nil, err
	}
	buf := &Buffer{object: obj, kind: kind}
	if kind == IndexData {
		ctx.BindVertexArray(0)
	}
	buf.Bind()
	ctx.BufferData(kind.Target(), data, STATIC_DRAW)
	return buf, nil
}

// Kind returns whether buf holds vertex or index data.
func (buf *Buffer) Kind() BufferKind { return buf.kind }

// Bind makes buf current on its target, replacing whatever was bound there.
func (buf *Buffer) Bind() { buf.ctx.BindBuffer(buf.kind.Target(), buf.handle) }

func bytesOf[T Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*sizeOf[T]())
}

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
