package spritebatch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAppendGlyph_Winding(t *testing.T) {
	s := Sprite{Position: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{1, 1}, UVRect: FullUVRect, Tiling: NoTiling}
	var g Glyph
	s.build(&g, 1)

	verts := appendGlyph(nil, &g)
	want := []Vertex{g.TopLeft, g.BottomLeft, g.BottomRight, g.BottomRight, g.TopRight, g.TopLeft}
	if len(verts) != VerticesPerGlyph {
		t.Fatalf("expected %d vertices, got %d", VerticesPerGlyph, len(verts))
	}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want[i], verts[i])
		}
	}
}

func TestGenerateBatches_RecyclesGlyphs(t *testing.T) {
	var sb SpriteBatch
	for _, tex := range []uint32{4, 4, 6, 4} {
		g := sb.glyphPool.create()
		g.Texture = tex
		sb.glyphs = append(sb.glyphs, g)
	}

	sb.generateBatches()

	if len(sb.glyphs) != 0 {
		t.Errorf("expected glyphs consumed, got %d", len(sb.glyphs))
	}
	if sb.glyphPool.live != 0 || len(sb.glyphPool.free) != 4 {
		t.Errorf("expected every glyph recycled, got %d live, %d free", sb.glyphPool.live, len(sb.glyphPool.free))
	}
	if sb.batchPool.live != 3 || len(sb.batches) != 3 {
		t.Errorf("expected 3 live batches, got %d (%d pooled live)", len(sb.batches), sb.batchPool.live)
	}
	if len(sb.verts) != 4*VerticesPerGlyph {
		t.Errorf("expected %d vertices, got %d", 4*VerticesPerGlyph, len(sb.verts))
	}

	sb.recycleFrame()
	if sb.batchPool.live != 0 || len(sb.batches) != 0 || len(sb.verts) != 0 {
		t.Errorf("expected an empty frame after recycling, got %d batches", len(sb.batches))
	}
}
