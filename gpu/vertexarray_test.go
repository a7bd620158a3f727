package gpu_test

import (
	"errors"
	"testing"

	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quadVertices = []float32{
		// x, y, z, u, v
		+0.5, +0.5, 0, 1, 1,
		+0.5, -0.5, 0, 1, 0,
		-0.5, -0.5, 0, 0, 0,
		-0.5, +0.5, 0, 0, 1,
	}
	quadIndices = []uint32{0, 1, 2, 2, 3, 0}
)

func TestVertexArrayQuad(t *testing.T) {
	ctx := gltest.New()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, quadIndices)
	require.NoError(t, err)
	va, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, ebo)
	require.NoError(t, err)

	require.NoError(t, va.DescribeAttribute(0, 3, gpu.FLOAT, 5, 0))
	require.NoError(t, va.DescribeAttribute(1, 2, gpu.FLOAT, 5, 3))

	state := ctx.VertexArrays[va.Handle()]
	assert.Equal(t, ebo.Handle(), state.ElementBuffer)
	assert.Equal(t, gltest.Attrib{Enabled: true, Buffer: vbo.Handle(), Size: 3, Type: gpu.FLOAT, Stride: 20, Offset: 0}, state.Attribs[0])
	assert.Equal(t, gltest.Attrib{Enabled: true, Buffer: vbo.Handle(), Size: 2, Type: gpu.FLOAT, Stride: 20, Offset: 12}, state.Attribs[1])

	prg, err := gpu.NewProgram(ctx, vsrc, fsrc)
	require.NoError(t, err)
	prg.Use()
	va.Draw(gpu.TRIANGLES, len(quadIndices))

	require.Len(t, ctx.Draws, 1)
	draw := ctx.Draws[0]
	assert.Equal(t, quadIndices, draw.Indices)
	assert.Equal(t, 2, draw.Primitives())
	assert.Equal(t, va.Handle(), draw.Array)
	assert.Equal(t, gpu.NO_ERROR, ctx.GetError())
}

func TestVertexArrayIndexTypes(t *testing.T) {
	ctx := gltest.New()

	prg, err := gpu.NewProgram(ctx, vsrc, fsrc)
	require.NoError(t, err)
	prg.Use()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)

	ebo16, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint16{3, 2, 1})
	require.NoError(t, err)
	va16, err := gpu.NewVertexArray[float32, uint16](ctx, vbo, ebo16)
	require.NoError(t, err)
	va16.Draw(gpu.TRIANGLES, 3)

	ebo8, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint8{0, 1, 2})
	require.NoError(t, err)
	va8, err := gpu.NewVertexArray[float32, uint8](ctx, vbo, ebo8)
	require.NoError(t, err)
	va8.Draw(gpu.TRIANGLES, 3)

	require.Len(t, ctx.Draws, 2)
	assert.Equal(t, []uint32{3, 2, 1}, ctx.Draws[0].Indices)
	assert.Equal(t, []uint32{0, 1, 2}, ctx.Draws[1].Indices)
}

func TestVertexArrayCapturesElementBinding(t *testing.T) {
	ctx := gltest.New()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)
	e1, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint32{0, 1, 2})
	require.NoError(t, err)
	e2, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint32{2, 3, 0})
	require.NoError(t, err)

	a, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, e1)
	require.NoError(t, err)
	b, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, e2)
	require.NoError(t, err)
	assert.Equal(t, int(b.Handle()), ctx.GetInteger(gpu.VERTEX_ARRAY_BINDING))

	a.Bind()
	assert.Equal(t, int(a.Handle()), ctx.GetInteger(gpu.VERTEX_ARRAY_BINDING))
	assert.Equal(t, int(e1.Handle()), ctx.GetInteger(gpu.ELEMENT_ARRAY_BUFFER_BINDING))

	b.Bind()
	assert.Equal(t, int(e2.Handle()), ctx.GetInteger(gpu.ELEMENT_ARRAY_BUFFER_BINDING))
}

func TestIndexUploadKeepsVertexArray(t *testing.T) {
	ctx := gltest.New()
	prg, err := gpu.NewProgram(ctx, vsrc, fsrc)
	require.NoError(t, err)
	prg.Use()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, quadIndices)
	require.NoError(t, err)
	va, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, ebo)
	require.NoError(t, err)
	va.Draw(gpu.TRIANGLES, len(quadIndices))

	// va is still bound after its draw
	other, err := gpu.NewBufferBytes(ctx, gpu.IndexData, []byte{3, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, ebo.Handle(), ctx.VertexArrays[va.Handle()].ElementBuffer)
	assert.Zero(t, ctx.GetInteger(gpu.VERTEX_ARRAY_BINDING))
	assert.Equal(t, int(other.Handle()), ctx.GetInteger(gpu.ELEMENT_ARRAY_BUFFER_BINDING))

	va.Draw(gpu.TRIANGLES, len(quadIndices))
	require.Len(t, ctx.Draws, 2)
	assert.Equal(t, quadIndices, ctx.Draws[1].Indices)
	assert.Equal(t, gpu.NO_ERROR, ctx.GetError())
}

func TestDescribeAttributeDriverError(t *testing.T) {
	ctx := gltest.New()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, quadIndices)
	require.NoError(t, err)
	va, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, ebo)
	require.NoError(t, err)

	err = va.DescribeAttribute(uint32(ctx.GetInteger(gpu.MAX_VERTEX_ATTRIBS)), 3, gpu.FLOAT, 5, 0)
	var derr *gpu.DriverError
	require.True(t, errors.As(err, &derr), "have %v", err)
	assert.Equal(t, gpu.INVALID_VALUE, derr.Code)
	assert.Equal(t, gpu.NO_ERROR, ctx.GetError(), "error flag not consumed")
}

func TestVertexArrayDoesNotOwnBuffers(t *testing.T) {
	ctx := gltest.New()

	vbo, err := gpu.NewBuffer(ctx, gpu.VertexData, quadVertices)
	require.NoError(t, err)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, quadIndices)
	require.NoError(t, err)
	va, err := gpu.NewVertexArray[float32, uint32](ctx, vbo, ebo)
	require.NoError(t, err)

	va.Release()
	assert.NotZero(t, vbo.Handle())
	assert.NotZero(t, ebo.Handle())
	assert.Len(t, ctx.Handles(gpu.KindBuffer), 2)

	vbo.Release()
	ebo.Release()
	assert.Zero(t, ctx.Live())
}
