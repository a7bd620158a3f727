package gpu

import (
	"go.uber.org/zap"
)

// Kind identifies which object namespace a handle lives in.
type Kind int

const (
	KindBuffer Kind = iota
	KindTexture
	KindProgram
	KindShader
	KindVertexArray
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	case KindProgram:
		return "program"
	case KindShader:
		return "shader"
	case KindVertexArray:
		return "vertex array"
	default:
		return "unknown"
	}
}

// Resource is a driver allocation with a single owner.
type Resource interface {
	// Handle returns the driver handle, or zero once released.
	Handle() uint32

	// Release deletes the handle if still held. Subsequent calls do nothing.
	Release()
}

// object is the ownership state shared by every resource in this package.
// Values embedding it must be used by pointer; a copy would own the same handle.
type object struct {
	ctx    Context
	kind   Kind
	handle uint32
	delete func(uint32)
}

func newObject(ctx Context, kind Kind, create func() uint32, delete func(uint32)) (object, error) {
	h := create()
	if h == 0 {
		logger.Warn("allocation refused", zap.Stringer("kind", kind))
		return object{}, &AllocationError{Kind: kind}
	}
	logger.Debug("allocated", zap.Stringer("kind", kind), zap.Uint32("handle", h))
	return object{ctx: ctx, kind: kind, handle: h, delete: delete}, nil
}

func (o *object) Handle() uint32 { return o.handle }

// Released reports whether the handle has been returned to the driver.
func (o *object) Released() bool { return o.handle == 0 }

func (o *object) Release() {
	if o.handle == 0 {
		return
	}
	h := o.handle
	o.handle = 0
	o.delete(h)
	logger.Debug("released", zap.Stringer("kind", o.kind), zap.Uint32("handle", h))
}

// Arena releases the resources it owns no later than its own Release, in
// reverse order of ownership. The zero value is ready to use.
//
//	var arena gpu.Arena
//	defer arena.Release()
type Arena struct {
	owned []Resource
}

// Own hands r to the arena. A resource released explicitly before the arena is
// skipped since its Release is a no-op.
func (a *Arena) Own(r Resource) {
	a.owned = append(a.owned, r)
}

// Len returns the number of owned resources still holding a handle.
func (a *Arena) Len() (n int) {
	for _, r := range a.owned {
		if r.Handle() != 0 {
			n++
		}
	}
	return n
}

// Release releases every owned resource, last owned first, and empties the
// arena. It is safe to call more than once.
func (a *Arena) Release() {
	for i := len(a.owned) - 1; i >= 0; i-- {
		a.owned[i].Release()
		a.owned[i] = nil
	}
	a.owned = a.owned[:0]
}
