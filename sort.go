package spritebatch

import (
	"cmp"
	"slices"
)

// SortMode selects how glyphs are ordered before batching.
// Every mode is a stable sort: glyphs with equal keys keep submission order.
type SortMode int

const (
	SortNone        SortMode = iota // Submission order
	SortTexture                     // Group by texture handle, fewest draw calls
	SortFrontToBack                 // Ascending depth, for depth-tested opaque sprites
	SortBackToFront                 // Descending depth, for alpha blending
)

// String returns the mode name.
func (m SortMode) String() string {
	switch m {
	case SortNone:
		return "none"
	case SortTexture:
		return "texture"
	case SortFrontToBack:
		return "front-to-back"
	case SortBackToFront:
		return "back-to-front"
	default:
		return "unknown"
	}
}

// sortGlyphs reorders glyphs in place. Unknown modes leave them untouched.
func sortGlyphs(glyphs []*Glyph, mode SortMode) {
	if len(glyphs) < 2 {
		return
	}
	switch mode {
	case SortTexture:
		slices.SortStableFunc(glyphs, func(a, b *Glyph) int {
			return cmp.Compare(a.Texture, b.Texture)
		})
	case SortFrontToBack:
		slices.SortStableFunc(glyphs, func(a, b *Glyph) int {
			return cmp.Compare(a.Depth, b.Depth)
		})
	case SortBackToFront:
		slices.SortStableFunc(glyphs, func(a, b *Glyph) int {
			return cmp.Compare(b.Depth, a.Depth)
		})
	}
}
