package gpu

// Index is an element type usable for indexed draws.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// VertexArray owns a vertex array object that captures one vertex buffer and
// one index buffer. It does not own either buffer; both must outlive any draw
// through it.
type VertexArray struct {
	object
	vbo, ebo *Buffer

	vsize int  // bytes per vertex element
	itype Enum // index element type
}

// NewVertexArray creates a vertex array and binds vbo and ebo into it. V and I
// are the element types vbo and ebo were created with.
func NewVertexArray[V Element, I Index](ctx Context, vbo, ebo *Buffer) (*VertexArray, error) {
	obj, err := newObject(ctx, KindVertexArray, ctx.CreateVertexArray, ctx.DeleteVertexArray)
	if err != nil {
		return nil, err
	}
	va := &VertexArray{object: obj, vbo: vbo, ebo: ebo, vsize: sizeOf[V]()}
	switch sizeOf[I]() {
	case 1:
		va.itype = UNSIGNED_BYTE
	case 2:
		va.itype = UNSIGNED_SHORT
	default:
		va.itype = UNSIGNED_INT
	}

	va.Bind()
	vbo.Bind()
	ebo.Bind()
	return va, nil
}

// Bind makes va the current vertex array.
func (va *VertexArray) Bind() { va.ctx.BindVertexArray(va.handle) }

// DescribeAttribute enables attribute index and points it into the vertex
// buffer. Stride and offset count vertex elements, not bytes. Errors come from
// the driver; index is not checked against the driver's attribute limit.
func (va *VertexArray) DescribeAttribute(index uint32, components int, ty Enum, stride, offset int) error {
	va.Bind()
	va.vbo.Bind()
	va.ctx.EnableVertexAttribArray(index)
	if err := CheckError(va.ctx, "EnableVertexAttribArray"); err != nil {
		return err
	}
	va.ctx.VertexAttribPointer(index, components, ty, false, stride*va.vsize, offset*va.vsize)
	return CheckError(va.ctx, "VertexAttribPointer")
}

// Draw binds va and draws count indices from the start of the index buffer.
func (va *VertexArray) Draw(mode Enum, count int) {
	va.Bind()
	va.ctx.DrawElements(mode, count, va.itype, 0)
}
