package spritebatch

import "github.com/go-gl/mathgl/mgl32"

// NullHandle is the device handle value meaning "no object".
// As a texture handle passed to a draw call it selects the white pixel texture.
const NullHandle uint32 = 0

// Vertex is one corner of a sprite quad.
// Memory layout matches the vertex attributes bound by the device.
type Vertex struct {
	Position mgl32.Vec3 // x, y and depth
	UV       mgl32.Vec2 // Tiling coordinates, 0..tiling
	UVRect   mgl32.Vec4 // Atlas sub-rectangle (u0, v0, du, dv)
	Color    uint32     // RGBA packed tint
}

// Glyph is a single quad submission with its four computed corners.
type Glyph struct {
	Texture uint32
	Depth   float32

	TopLeft     Vertex
	TopRight    Vertex
	BottomLeft  Vertex
	BottomRight Vertex
}

// Batch is a contiguous run of same-texture glyphs, drawn with one call.
type Batch struct {
	Texture uint32 // Texture bound for the whole run
	Offset  int    // First vertex of the run
	Count   int    // Number of vertices, always a multiple of 6
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorMagenta     uint32 = 0xFFFF00FF
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
