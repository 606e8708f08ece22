package spritebatch

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// textureUnit is the unit every batch texture is bound to.
const textureUnit = 0

// RenderStats summarizes one Render call.
type RenderStats struct {
	DrawCalls int
	Vertices  int
}

// Glyphs returns the number of quads drawn.
func (rs RenderStats) Glyphs() int { return rs.Vertices / VerticesPerGlyph }

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d draw calls, %d sprites", rs.DrawCalls, rs.Glyphs())
}

// Merge adds the counts of s to rs.
func (rs *RenderStats) Merge(s RenderStats) {
	rs.DrawCalls += s.DrawCalls
	rs.Vertices += s.Vertices
}

func (rs RenderStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("draw_calls", rs.DrawCalls),
		slog.Int("vertices", rs.Vertices),
		slog.Int("sprites", rs.Glyphs()),
	)
}

// ScreenProjection maps pixel coordinates on a screen of the given size,
// origin top-left and y down, to clip space: x' = 2x/W - 1, y' = 1 - 2y/H.
func ScreenProjection(screen mgl32.Vec2) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / screen.X(), 0, 0, 0,
		0, -2 / screen.Y(), 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}

// Render draws the batches of the last finalized frame, one draw call per
// batch, transforming vertices by world then viewProj.
// It returns an error matching ErrInvalidState if the batch is not initialized
// or the shared program was released since Init.
func (sb *SpriteBatch) Render(world, viewProj mgl32.Mat4, opts ...RenderOption) (RenderStats, error) {
	var stats RenderStats
	if !sb.stream.ready() {
		return stats, &StateError{Op: "Render", State: sb.state, Reason: "not initialized"}
	}

	o := applyRenderOptions(opts)
	program := o.program
	if program == nil {
		if !isSharedProgram(sb.program) {
			return stats, &StateError{Op: "Render", State: sb.state, Reason: "sprite program disposed"}
		}
		program = sb.program
	}

	sb.dev.ApplyDepthState(o.depth)
	sb.dev.ApplyRasterizerState(o.rasterizer)

	program.Use()
	program.SetUniformMat4(UniformWorld, world)
	program.SetUniformMat4(UniformVP, viewProj)

	sb.dev.BindVertexArray(sb.stream.vao)
	for _, b := range sb.batches {
		sb.dev.BindTexture(textureUnit, b.Texture)
		program.SetUniformInt(UniformTexture, textureUnit)
		sb.dev.ApplySamplerState(textureUnit, o.sampler)

		sb.dev.DrawTriangles(b.Offset, b.Count)
		stats.DrawCalls++
		stats.Vertices += b.Count
	}
	sb.dev.BindVertexArray(NullHandle)
	sb.dev.ResetSampler(textureUnit)
	program.Unuse()

	sb.log.Debug("sprite batch rendered", "stats", stats)
	return stats, nil
}

// RenderScreen renders in pixel space for a screen of the given size with
// an identity world transform.
func (sb *SpriteBatch) RenderScreen(screen mgl32.Vec2, opts ...RenderOption) (RenderStats, error) {
	return sb.Render(mgl32.Ident4(), ScreenProjection(screen), opts...)
}

// RenderScreenWorld renders in pixel space after applying world.
func (sb *SpriteBatch) RenderScreenWorld(world mgl32.Mat4, screen mgl32.Vec2, opts ...RenderOption) (RenderStats, error) {
	return sb.Render(world, ScreenProjection(screen), opts...)
}
