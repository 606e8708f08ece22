package spritebatch

import "github.com/go-gl/mathgl/mgl32"

var (
	// FullUVRect samples the whole texture.
	FullUVRect = mgl32.Vec4{0, 0, 1, 1}
	// NoTiling maps the UV rectangle exactly once across the quad.
	NoTiling = mgl32.Vec2{1, 1}
)

// Sprite describes one quad to draw. All Draw methods funnel into it.
type Sprite struct {
	Texture  uint32     // NullHandle draws with the white pixel texture
	Position mgl32.Vec2 // Where the pivot lands
	Size     mgl32.Vec2
	Offset   mgl32.Vec2 // Pivot as a fraction of Size, (0,0) is the top-left corner
	Rotation float32    // Radians, clockwise on a y-down screen
	UVRect   mgl32.Vec4 // Zero value selects FullUVRect
	Tiling   mgl32.Vec2 // Zero value selects NoTiling
	Tint     uint32
	Depth    float32
}

// Draw queues an axis-aligned quad from position to position+size that shows
// the whole texture once.
func (sb *SpriteBatch) Draw(tex uint32, position, size mgl32.Vec2, tint uint32, depth float32) {
	sb.add(&Sprite{
		Texture:  tex,
		Position: position,
		Size:     size,
		UVRect:   FullUVRect,
		Tiling:   NoTiling,
		Tint:     tint,
		Depth:    depth,
	})
}

// DrawRegion queues an axis-aligned quad showing the uvRect region of tex.
func (sb *SpriteBatch) DrawRegion(tex uint32, uvRect mgl32.Vec4, position, size mgl32.Vec2, tint uint32, depth float32) {
	sb.add(&Sprite{
		Texture:  tex,
		Position: position,
		Size:     size,
		UVRect:   uvRect,
		Tiling:   NoTiling,
		Tint:     tint,
		Depth:    depth,
	})
}

// DrawTiled queues an axis-aligned quad repeating the uvRect region
// tiling.X times horizontally and tiling.Y times vertically.
func (sb *SpriteBatch) DrawTiled(tex uint32, uvRect mgl32.Vec4, tiling, position, size mgl32.Vec2, tint uint32, depth float32) {
	sb.add(&Sprite{
		Texture:  tex,
		Position: position,
		Size:     size,
		UVRect:   uvRect,
		Tiling:   tiling,
		Tint:     tint,
		Depth:    depth,
	})
}

// DrawPivot is DrawTiled with the quad anchored at offset, a fraction of size.
// An offset of (0.5, 0.5) centers the quad on position.
func (sb *SpriteBatch) DrawPivot(tex uint32, uvRect mgl32.Vec4, tiling, position, offset, size mgl32.Vec2, tint uint32, depth float32) {
	sb.add(&Sprite{
		Texture:  tex,
		Position: position,
		Size:     size,
		Offset:   offset,
		UVRect:   uvRect,
		Tiling:   tiling,
		Tint:     tint,
		Depth:    depth,
	})
}

// DrawRotated is DrawPivot with the quad rotated around its pivot.
// Positive rotation turns clockwise on a y-down screen.
func (sb *SpriteBatch) DrawRotated(tex uint32, uvRect mgl32.Vec4, tiling, position, offset, size mgl32.Vec2, rotation float32, tint uint32, depth float32) {
	sb.add(&Sprite{
		Texture:  tex,
		Position: position,
		Size:     size,
		Offset:   offset,
		Rotation: rotation,
		UVRect:   uvRect,
		Tiling:   tiling,
		Tint:     tint,
		Depth:    depth,
	})
}

// DrawSprite queues s. Zero UVRect and Tiling fields select the defaults.
func (sb *SpriteBatch) DrawSprite(s Sprite) {
	if s.UVRect == (mgl32.Vec4{}) {
		s.UVRect = FullUVRect
	}
	if s.Tiling == (mgl32.Vec2{}) {
		s.Tiling = NoTiling
	}
	sb.add(&s)
}

// corners returns the top-left, top-right, bottom-left and bottom-right
// positions of the quad. Negative sizes are not rejected; they flip the quad.
func (s *Sprite) corners() (tl, tr, bl, br mgl32.Vec2) {
	cl := s.Size.X() * -s.Offset.X()
	cr := s.Size.X() * (1 - s.Offset.X())
	ct := s.Size.Y() * -s.Offset.Y()
	cb := s.Size.Y() * (1 - s.Offset.Y())

	if s.Rotation == 0 {
		px, py := s.Position.X(), s.Position.Y()
		return mgl32.Vec2{cl + px, ct + py}, mgl32.Vec2{cr + px, ct + py},
			mgl32.Vec2{cl + px, cb + py}, mgl32.Vec2{cr + px, cb + py}
	}

	// Rotating by +angle in y-down space is a visual clockwise turn.
	rot := mgl32.Rotate2D(s.Rotation)
	corner := func(cx, cy float32) mgl32.Vec2 {
		return rot.Mul2x1(mgl32.Vec2{cx, cy}).Add(s.Position)
	}
	return corner(cl, ct), corner(cr, ct), corner(cl, cb), corner(cr, cb)
}

// build fills g from s. tex is the already-resolved texture handle.
func (s *Sprite) build(g *Glyph, tex uint32) {
	tl, tr, bl, br := s.corners()
	tx, ty := s.Tiling.X(), s.Tiling.Y()

	g.Texture = tex
	g.Depth = s.Depth
	g.TopLeft = Vertex{Position: tl.Vec3(s.Depth), UV: mgl32.Vec2{0, 0}, UVRect: s.UVRect, Color: s.Tint}
	g.TopRight = Vertex{Position: tr.Vec3(s.Depth), UV: mgl32.Vec2{tx, 0}, UVRect: s.UVRect, Color: s.Tint}
	g.BottomLeft = Vertex{Position: bl.Vec3(s.Depth), UV: mgl32.Vec2{0, ty}, UVRect: s.UVRect, Color: s.Tint}
	g.BottomRight = Vertex{Position: br.Vec3(s.Depth), UV: mgl32.Vec2{tx, ty}, UVRect: s.UVRect, Color: s.Tint}
}
