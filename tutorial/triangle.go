package tutorial

import (
	"dasa.cc/silky/gpu"
	"go.uber.org/zap"
)

var triangleVertices = []float32{
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0, 0.5, 0,
}

var twoTriangleVertices = []float32{
	-0.9, -0.5, 0,
	-0.1, -0.5, 0,
	-0.5, 0.5, 0,

	0.1, -0.5, 0,
	0.9, -0.5, 0,
	0.5, 0.5, 0,
}

// Triangle draws one flat colored triangle.
type Triangle struct {
	mesh
	vertices []float32
}

func NewTriangle(opts Options) *Triangle {
	return &Triangle{mesh: mesh{opts: opts}, vertices: triangleVertices}
}

// NewTwoTriangles returns a Triangle scene drawing two triangles side by side
// from six vertices.
func NewTwoTriangles(opts Options) *Triangle {
	return &Triangle{mesh: mesh{opts: opts}, vertices: twoTriangleVertices}
}

func (s *Triangle) Load(ctx gpu.Context) error {
	n := len(s.vertices) / 3
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	if err := s.load(ctx, colorVert, colorFrag, s.vertices, 3, indices, attrib{index: 0, components: 3}); err != nil {
		return err
	}
	logger.Debug("scene loaded", zap.String("scene", "triangle"), zap.Int("vertices", n))
	return nil
}

func (s *Triangle) Render(dt float64) error {
	s.begin()
	return s.draw()
}
