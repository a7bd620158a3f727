package gpu_test

import (
	"errors"
	"testing"

	"dasa.cc/silky/gpu"
	"dasa.cc/silky/gpu/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type releaser struct {
	handle uint32
	order  *[]uint32
}

func (r *releaser) Handle() uint32 { return r.handle }

func (r *releaser) Release() {
	if r.handle != 0 {
		*r.order = append(*r.order, r.handle)
		r.handle = 0
	}
}

func TestReleaseIdempotent(t *testing.T) {
	ctx := gltest.New()

	buf, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{1, 2, 3})
	require.NoError(t, err)
	tex, err := gpu.NewTextureRGBA(ctx, make([]byte, 4), 1, 1)
	require.NoError(t, err)
	prg, err := gpu.NewProgram(ctx, vsrc, fsrc)
	require.NoError(t, err)
	ebo, err := gpu.NewBuffer(ctx, gpu.IndexData, []uint32{0})
	require.NoError(t, err)
	va, err := gpu.NewVertexArray[float32, uint32](ctx, buf, ebo)
	require.NoError(t, err)

	for _, r := range []gpu.Resource{va, ebo, prg, tex, buf} {
		require.NotZero(t, r.Handle())
		r.Release()
		assert.Zero(t, r.Handle())
		r.Release()
		assert.Zero(t, r.Handle())
	}
	assert.Zero(t, ctx.Live())
	assert.Empty(t, ctx.Invalid, "double release reached the driver")
}

func TestArenaReleasesInReverse(t *testing.T) {
	var (
		arena gpu.Arena
		order []uint32
	)
	for h := uint32(1); h <= 4; h++ {
		arena.Own(&releaser{handle: h, order: &order})
	}
	assert.Equal(t, 4, arena.Len())

	arena.Release()
	assert.Equal(t, []uint32{4, 3, 2, 1}, order)
	assert.Zero(t, arena.Len())

	arena.Release()
	assert.Len(t, order, 4)
}

func TestArenaAfterExplicitRelease(t *testing.T) {
	ctx := gltest.New()
	var arena gpu.Arena

	a, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{0})
	require.NoError(t, err)
	arena.Own(a)
	b, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{1})
	require.NoError(t, err)
	arena.Own(b)

	a.Release()
	assert.Equal(t, 1, arena.Len())

	arena.Release()
	assert.True(t, b.Released())
	assert.Zero(t, ctx.Live())
	assert.Empty(t, ctx.Invalid)
}

func TestArenaScope(t *testing.T) {
	ctx := gltest.New()

	func() {
		var arena gpu.Arena
		defer arena.Release()

		tex, err := gpu.NewTextureRGBA(ctx, make([]byte, 16), 2, 2)
		require.NoError(t, err)
		arena.Own(tex)
		assert.Equal(t, 1, ctx.Live())
	}()

	assert.Zero(t, ctx.Live())
}

func TestAllocationError(t *testing.T) {
	ctx := gltest.New()
	ctx.Exhausted = true

	_, err := gpu.NewBuffer(ctx, gpu.VertexData, []float32{1})
	var alloc *gpu.AllocationError
	require.True(t, errors.As(err, &alloc))
	assert.Equal(t, gpu.KindBuffer, alloc.Kind)

	_, err = gpu.NewTextureRGBA(ctx, make([]byte, 4), 1, 1)
	require.True(t, errors.As(err, &alloc))
	assert.Equal(t, gpu.KindTexture, alloc.Kind)

	_, err = gpu.NewProgram(ctx, vsrc, fsrc)
	require.True(t, errors.As(err, &alloc))
	assert.Equal(t, gpu.KindProgram, alloc.Kind)
}
