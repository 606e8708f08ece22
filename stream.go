package spritebatch

import "github.com/pkg/errors"

// vertexStream is the device vertex buffer a batch streams its frame into.
// Capacity is counted in glyphs and only grows.
type vertexStream struct {
	dev      Device
	vao, vbo uint32
	capacity int
	usage    BufferUsage
	reallocs int
}

func (s *vertexStream) create(p Program) error {
	vao, vbo, err := s.dev.CreateVertexArray(p, s.capacity*VerticesPerGlyph, s.usage)
	if err == nil && (vao == NullHandle || vbo == NullHandle) {
		s.dev.DeleteVertexArray(vao, vbo)
		return resourceError("vertex array", nil)
	}
	if err != nil {
		return resourceError("vertex array", err)
	}
	s.vao, s.vbo = vao, vbo
	return nil
}

func (s *vertexStream) ready() bool {
	return s.vao != NullHandle && s.vbo != NullHandle
}

// upload writes the vertices of glyphs glyphs. When the frame does not fit,
// the storage is reallocated at twice the glyph count first; the old contents
// are not kept since they are rewritten right after.
func (s *vertexStream) upload(verts []Vertex, glyphs int) (grew bool, err error) {
	if glyphs > s.capacity {
		capacity := glyphs * 2
		if err := s.dev.ReallocateVertexBuffer(s.vbo, capacity*VerticesPerGlyph, s.usage); err != nil {
			return false, resourceError("vertex buffer", err)
		}
		s.capacity = capacity
		s.reallocs++
		grew = true
	}
	if err := s.dev.UpdateVertexBuffer(s.vbo, verts[:glyphs*VerticesPerGlyph]); err != nil {
		return grew, errors.Wrap(err, "spritebatch: update vertex buffer")
	}
	return grew, nil
}

func (s *vertexStream) release() {
	if s.vao == NullHandle && s.vbo == NullHandle {
		return
	}
	s.dev.DeleteVertexArray(s.vao, s.vbo)
	s.vao, s.vbo = NullHandle, NullHandle
}
