package spritebatch

import "log/slog"

// InitialGlyphCapacity is the number of glyphs the vertex buffer holds
// before its first growth.
const InitialGlyphCapacity = 32

// Option configures a SpriteBatch.
type Option func(*SpriteBatch)

// WithInitialCapacity sets the initial vertex buffer capacity in glyphs.
// Values below one are ignored.
func WithInitialCapacity(glyphs int) Option {
	return func(sb *SpriteBatch) {
		if glyphs > 0 {
			sb.stream.capacity = glyphs
		}
	}
}

// WithBufferUsage sets the usage hint of the vertex buffer.
// Batches default to UsageDynamic.
func WithBufferUsage(u BufferUsage) Option {
	return func(sb *SpriteBatch) { sb.stream.usage = u }
}

// WithLogger sets the logger used by the batch.
func WithLogger(l *slog.Logger) Option {
	return func(sb *SpriteBatch) {
		if l != nil {
			sb.log = l
		}
	}
}

// RenderOption configures a single Render call.
type RenderOption func(*renderOptions)

// renderOptions holds per-render state. The zero value is the default:
// no depth test, no culling, linear filtering with repeat wrapping and the
// shared sprite program.
type renderOptions struct {
	depth      DepthState
	rasterizer RasterizerState
	sampler    SamplerState
	program    Program
}

// WithDepthState overrides DepthNone.
func WithDepthState(s DepthState) RenderOption {
	return func(o *renderOptions) { o.depth = s }
}

// WithRasterizerState overrides RasterizerCullNone.
func WithRasterizerState(s RasterizerState) RenderOption {
	return func(o *renderOptions) { o.rasterizer = s }
}

// WithSamplerState overrides SamplerLinearWrap.
func WithSamplerState(s SamplerState) RenderOption {
	return func(o *renderOptions) { o.sampler = s }
}

// WithProgram renders with p instead of the shared sprite program.
// p must accept the same attributes and the World, VP and SBTex uniforms.
func WithProgram(p Program) RenderOption {
	return func(o *renderOptions) { o.program = p }
}

func applyRenderOptions(opts []RenderOption) renderOptions {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
