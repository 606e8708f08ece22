package spritebatch

// VerticesPerGlyph is the number of vertices a glyph expands to: two
// triangles, no index buffer.
const VerticesPerGlyph = 6

// appendGlyph appends the two triangles of g to verts.
// Winding is top-left, bottom-left, bottom-right, bottom-right, top-right, top-left.
func appendGlyph(verts []Vertex, g *Glyph) []Vertex {
	return append(verts,
		g.TopLeft, g.BottomLeft, g.BottomRight,
		g.BottomRight, g.TopRight, g.TopLeft,
	)
}

// generateBatches flattens the pending glyphs into sb.verts and coalesces
// consecutive equal textures into sb.batches in a single pass. Each glyph is
// recycled as soon as it has been copied. Glyphs must not be empty.
func (sb *SpriteBatch) generateBatches() {
	sb.verts = sb.verts[:0]

	first := sb.glyphs[0]
	call := sb.batchPool.create()
	call.Texture = first.Texture
	call.Offset = 0
	call.Count = VerticesPerGlyph
	sb.batches = append(sb.batches, call)
	sb.verts = appendGlyph(sb.verts, first)
	sb.glyphPool.recycle(first)

	for _, g := range sb.glyphs[1:] {
		if g.Texture == call.Texture {
			call.Count += VerticesPerGlyph
		} else {
			next := sb.batchPool.create()
			next.Texture = g.Texture
			next.Offset = call.Offset + call.Count
			next.Count = VerticesPerGlyph
			sb.batches = append(sb.batches, next)
			call = next
		}
		sb.verts = appendGlyph(sb.verts, g)
		sb.glyphPool.recycle(g)
	}

	clear(sb.glyphs)
	sb.glyphs = sb.glyphs[:0]
}
