package gpu_test

import (
	"encoding/binary"
	"math"
	"testing"

	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferUpload(t *testing.T) {
	ctx := gltest.New()

	data := []float32{0.5, -1, 2}
	buf, err := gpu.NewBuffer(ctx, gpu.VertexData, data)
	require.NoError(t, err)

	bin := ctx.Buffers[buf.Handle()]
	require.Len(t, bin, 4*len(data))
	for i, want := range data {
		have := math.Float32frombits(binary.LittleEndian.Uint32(bin[4*i:]))
		assert.Equal(t, want, have)
	}
	assert.Equal(t, int(buf.Handle()), ctx.GetInteger(gpu.ARRAY_BUFFER_BINDING))
}

func TestBufferElementSize(t *testing.T) {
	ctx := gltest.New()

	b16, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint16{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, ctx.Buffers[b16.Handle()], 6)

	b8, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint8{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, ctx.Buffers[b8.Handle()])

	raw, err := gpu.NewBufferBytes(ctx, gpu.VertexData, []byte{9, 8, 7, 6, 5})
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7, 6, 5}, ctx.Buffers[raw.Handle()])

	empty, err := gpu.NewBuffer[float32](ctx, gpu.VertexData, nil)
	require.NoError(t, err)
	assert.Empty(t, ctx.Buffers[empty.Handle()])
}

func TestBufferLastBindWins(t *testing.T) {
	ctx := gltest.New()

	a, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{1})
	require.NoError(t, err)
	b, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{2})
	require.NoError(t, err)

	a.Bind()
	b.Bind()
	assert.Equal(t, int(b.Handle()), ctx.GetInteger(gpu.ARRAY_BUFFER_BINDING))

	b.Bind()
	a.Bind()
	assert.Equal(t, int(a.Handle()), ctx.GetInteger(gpu.ARRAY_BUFFER_BINDING))
}

func TestBufferKindTarget(t *testing.T) {
	assert.Equal(t, gpu.ARRAY_BUFFER, gpu.VertexData.Target())
	assert.Equal(t, gpu.ELEMENT_ARRAY_BUFFER, gpu.IndexData.Target())

	ctx := gltest.New()
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint32{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, gpu.IndexData, ebo.Kind())
	assert.Equal(t, int(ebo.Handle()), ctx.GetInteger(gpu.ELEMENT_ARRAY_BUFFER_BINDING))
	assert.Zero(t, ctx.GetInteger(gpu.ARRAY_BUFFER_BINDING))
}
