// Package opengl provides an OpenGL 4.1 device for the spritebatch package.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/spritebatch"
)

// Device implements spritebatch.Device on the current OpenGL context.
// gl.Init must have been called, and every method must run on the thread
// that owns the context.
type Device struct {
	samplers map[spritebatch.SamplerState]uint32
}

var _ spritebatch.Device = (*Device)(nil)

// NewDevice returns a device drawing into the current context.
func NewDevice() *Device {
	return &Device{samplers: make(map[spritebatch.SamplerState]uint32)}
}

var vertexStride = int32(unsafe.Sizeof(spritebatch.Vertex{}))

// CreateVertexArray creates a VAO with one vertex buffer laid out for
// spritebatch.Vertex, with attribute locations queried from p.
func (d *Device) CreateVertexArray(p spritebatch.Program, vertices int, usage spritebatch.BufferUsage) (vao, vbo uint32, err error) {
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, 0, errors.New("glGenVertexArrays returned 0")
	}
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &vao)
		return 0, 0, errors.New("glGenBuffers returned 0")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertices*int(vertexStride), nil, bufferUsage(usage))

	v := spritebatch.Vertex{}
	attribs := []struct {
		name       string
		size       int32
		xtype      uint32
		normalized bool
		offset     uintptr
	}{
		{"vPosition", 3, gl.FLOAT, false, unsafe.Offsetof(v.Position)},
		{"vTint", 4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(v.Color)},
		{"vUV", 2, gl.FLOAT, false, unsafe.Offsetof(v.UV)},
		{"vUVRect", 4, gl.FLOAT, false, unsafe.Offsetof(v.UVRect)},
	}
	for _, a := range attribs {
		loc := gl.GetAttribLocation(p.ID(), gl.Str(a.name+"\x00"))
		if loc < 0 {
			// Optimized out by the shader compiler.
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), a.size, a.xtype, a.normalized, vertexStride, a.offset)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo, nil
}

// ReallocateVertexBuffer orphans the storage of vbo and allocates room for
// the given vertex count.
func (d *Device) ReallocateVertexBuffer(vbo uint32, vertices int, usage spritebatch.BufferUsage) error {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertices*int(vertexStride), nil, bufferUsage(usage))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("glBufferData: error 0x%x", code)
	}
	return nil
}

// UpdateVertexBuffer writes verts at the start of vbo.
func (d *Device) UpdateVertexBuffer(vbo uint32, verts []spritebatch.Vertex) error {
	if len(verts) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*int(vertexStride), gl.Ptr(verts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("glBufferSubData: error 0x%x", code)
	}
	return nil
}

// DeleteVertexArray deletes a VAO and its buffer. Zero names are skipped.
func (d *Device) DeleteVertexArray(vao, vbo uint32) {
	if vbo != 0 {
		gl.DeleteBuffers(1, &vbo)
	}
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
}

// BindVertexArray binds vao, or unbinds with 0.
func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DrawTriangles draws a triangle list from the bound vertex array.
func (d *Device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

// Dispose deletes the sampler objects created by ApplySamplerState.
func (d *Device) Dispose() {
	for state, id := range d.samplers {
		gl.DeleteSamplers(1, &id)
		delete(d.samplers, state)
	}
}

func bufferUsage(u spritebatch.BufferUsage) uint32 {
	if u == spritebatch.UsageStatic {
		return gl.STATIC_DRAW
	}
	return gl.DYNAMIC_DRAW
}
