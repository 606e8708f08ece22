package spritebatch_test

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/go-theft-auto/spritebatch"
)

// drawCall is one DrawTriangles call recorded by mockDevice.
type drawCall struct {
	texture uint32
	first   int
	count   int
}

// mockDevice records what a SpriteBatch asks of the device without any
// graphics context.
type mockDevice struct {
	next uint32 // last handle handed out

	compiles     int
	reallocs     int
	reallocSizes []int
	updates      int
	uploaded     []spritebatch.Vertex
	arrayVerts   int
	arrayUsage   spritebatch.BufferUsage

	textures        []uint32
	deletedTextures []uint32
	deletedArrays   [][2]uint32

	boundVAO   uint32
	boundTex   uint32
	draws      []drawCall
	depth      []spritebatch.DepthState
	rasterizer []spritebatch.RasterizerState
	samplers   []spritebatch.SamplerState
	resets     int

	lastProgram *mockProgram
	sources     []spritebatch.ProgramSource

	// Failure injection.
	programErr  error
	nullProgram bool
	arrayErr    error
	nullArray   bool
	textureErr  error
	nullTexture bool
	reallocErr  error
	updateErr   error
}

var _ spritebatch.Device = (*mockDevice)(nil)

func (d *mockDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *mockDevice) CompileProgram(src spritebatch.ProgramSource) (spritebatch.Program, error) {
	d.compiles++
	d.sources = append(d.sources, src)
	if d.programErr != nil {
		return nil, d.programErr
	}
	p := newMockProgram(d.handle())
	if d.nullProgram {
		p.id = 0
	}
	d.lastProgram = p
	return p, nil
}

func (d *mockDevice) CreateVertexArray(_ spritebatch.Program, vertices int, usage spritebatch.BufferUsage) (uint32, uint32, error) {
	if d.arrayErr != nil {
		return 0, 0, d.arrayErr
	}
	d.arrayVerts = vertices
	d.arrayUsage = usage
	if d.nullArray {
		return d.handle(), 0, nil
	}
	return d.handle(), d.handle(), nil
}

func (d *mockDevice) ReallocateVertexBuffer(_ uint32, vertices int, _ spritebatch.BufferUsage) error {
	if d.reallocErr != nil {
		return d.reallocErr
	}
	d.reallocs++
	d.reallocSizes = append(d.reallocSizes, vertices)
	return nil
}

func (d *mockDevice) UpdateVertexBuffer(_ uint32, verts []spritebatch.Vertex) error {
	if d.updateErr != nil {
		return d.updateErr
	}
	d.updates++
	d.uploaded = append(d.uploaded[:0], verts...)
	return nil
}

func (d *mockDevice) DeleteVertexArray(vao, vbo uint32) {
	d.deletedArrays = append(d.deletedArrays, [2]uint32{vao, vbo})
}

func (d *mockDevice) CreateTexture(width, height int, pixels []uint8) (uint32, error) {
	if d.textureErr != nil {
		return 0, d.textureErr
	}
	if d.nullTexture {
		return 0, nil
	}
	if len(pixels) != width*height*4 {
		return 0, errors.Errorf("bad pixel count %d", len(pixels))
	}
	tex := d.handle()
	d.textures = append(d.textures, tex)
	return tex, nil
}

func (d *mockDevice) DeleteTexture(tex uint32) {
	d.deletedTextures = append(d.deletedTextures, tex)
}

func (d *mockDevice) ApplyDepthState(s spritebatch.DepthState) { d.depth = append(d.depth, s) }

func (d *mockDevice) ApplyRasterizerState(s spritebatch.RasterizerState) {
	d.rasterizer = append(d.rasterizer, s)
}

func (d *mockDevice) ApplySamplerState(_ uint32, s spritebatch.SamplerState) {
	d.samplers = append(d.samplers, s)
}

func (d *mockDevice) ResetSampler(uint32) { d.resets++ }
func (d *mockDevice) BindVertexArray(vao uint32) { d.boundVAO = vao }
func (d *mockDevice) BindTexture(_, tex uint32) { d.boundTex = tex }
func (d *mockDevice) DrawTriangles(first, count int) {
	d.draws = append(d.draws, drawCall{texture: d.boundTex, first: first, count: count})
}

// mockProgram records uniform uploads.
type mockProgram struct {
	id       uint32
	uses     int
	unuses   int
	disposed int
	mats     map[string]mgl32.Mat4
	ints     map[string]int32
}

func newMockProgram(id uint32) *mockProgram {
	return &mockProgram{id: id, mats: make(map[string]mgl32.Mat4), ints: make(map[string]int32)}
}

func (p *mockProgram) ID() uint32 { return p.id }
func (p *mockProgram) Use() { p.uses++ }
func (p *mockProgram) Unuse() { p.unuses++ }
func (p *mockProgram) Dispose() { p.disposed++ }

func (p *mockProgram) SetUniformMat4(name string, m mgl32.Mat4) { p.mats[name] = m }
func (p *mockProgram) SetUniformInt(name string, v int32) { p.ints[name] = v }
