package spritebatch

import "github.com/go-gl/mathgl/mgl32"

// Device is the graphics collaborator a SpriteBatch creates its resources
// with and draws through. All methods must be called on the thread that owns
// the graphics context.
//
// Handles are device object names; NullHandle is never a valid object.
// Creation methods report failure either with an error or by returning
// NullHandle, and the batch treats both the same way.
type Device interface {
	// CompileProgram builds a shader program whose vertex inputs are bound
	// to src.Attributes in order.
	CompileProgram(src ProgramSource) (Program, error)

	// CreateVertexArray creates a vertex array object and a vertex buffer
	// laid out for Vertex and allocates room for the given vertex count.
	CreateVertexArray(p Program, vertices int, usage BufferUsage) (vao, vbo uint32, err error)
	// ReallocateVertexBuffer replaces the storage of vbo with room for the
	// given vertex count. Previous contents are discarded.
	ReallocateVertexBuffer(vbo uint32, vertices int, usage BufferUsage) error
	// UpdateVertexBuffer writes verts at the start of vbo.
	UpdateVertexBuffer(vbo uint32, verts []Vertex) error
	DeleteVertexArray(vao, vbo uint32)

	// CreateTexture uploads an RGBA8 image and returns its handle.
	CreateTexture(width, height int, pixels []uint8) (uint32, error)
	DeleteTexture(tex uint32)

	ApplyDepthState(DepthState)
	ApplyRasterizerState(RasterizerState)
	ApplySamplerState(unit uint32, s SamplerState)
	// ResetSampler unbinds any sampler object from unit.
	ResetSampler(unit uint32)
	BindVertexArray(vao uint32)
	BindTexture(unit, tex uint32)
	// DrawTriangles draws count vertices of the bound vertex array as a
	// triangle list, starting at vertex first.
	DrawTriangles(first, count int)
}

// Program is a linked shader program.
type Program interface {
	ID() uint32
	Use()
	Unuse()
	SetUniformMat4(name string, m mgl32.Mat4)
	SetUniformInt(name string, v int32)
	Dispose()
}

// ProgramSource holds the stage sources of a program and the vertex
// attribute names in binding order.
type ProgramSource struct {
	Vertex     string
	Fragment   string
	Attributes []string
}

// BufferUsage hints how often vertex buffer contents change.
type BufferUsage int

const (
	UsageDynamic BufferUsage = iota // Rewritten every frame
	UsageStatic                     // Written once, drawn many times
)

// CompareFunc is a depth comparison function.
type CompareFunc int

const (
	CompareLessEqual CompareFunc = iota
	CompareLess
	CompareGreater
	CompareGreaterEqual
	CompareEqual
	CompareAlways
)

// DepthState describes depth testing and depth writes.
// The zero value disables both.
type DepthState struct {
	Test  bool
	Write bool
	Func  CompareFunc
}

var (
	DepthNone      = DepthState{}
	DepthRead      = DepthState{Test: true, Func: CompareLessEqual}
	DepthWrite     = DepthState{Test: true, Write: true, Func: CompareAlways}
	DepthReadWrite = DepthState{Test: true, Write: true, Func: CompareLessEqual}
)

// CullMode selects which winding is culled.
type CullMode int

const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

// RasterizerState describes face culling and fill mode.
// The zero value culls nothing and fills polygons.
type RasterizerState struct {
	Cull      CullMode
	Wireframe bool
}

var (
	RasterizerCullNone             = RasterizerState{}
	RasterizerCullClockwise        = RasterizerState{Cull: CullClockwise}
	RasterizerCullCounterClockwise = RasterizerState{Cull: CullCounterClockwise}
	RasterizerWireframe            = RasterizerState{Wireframe: true}
)

// TextureFilter is a texture sampling filter.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
	FilterLinearMipmapLinear
)

// TextureWrap is a texture addressing mode.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// SamplerState describes how textures are sampled.
// The zero value is linear filtering with repeat wrapping.
type SamplerState struct {
	MinFilter TextureFilter
	MagFilter TextureFilter
	WrapS     TextureWrap
	WrapT     TextureWrap
}

var (
	SamplerLinearWrap  = SamplerState{}
	SamplerLinearClamp = SamplerState{WrapS: WrapClampToEdge, WrapT: WrapClampToEdge}
	SamplerPointWrap   = SamplerState{MinFilter: FilterNearest, MagFilter: FilterNearest}
	SamplerPointClamp  = SamplerState{
		MinFilter: FilterNearest, MagFilter: FilterNearest,
		WrapS: WrapClampToEdge, WrapT: WrapClampToEdge,
	}
)
