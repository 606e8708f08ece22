package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/spritebatch"
)

// ApplyDepthState sets depth test, depth writes and the compare function.
func (d *Device) ApplyDepthState(s spritebatch.DepthState) {
	if s.Test {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(compareFunc(s.Func))
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(s.Write)
}

// ApplyRasterizerState sets face culling and polygon fill mode.
// Front faces are counter-clockwise.
func (d *Device) ApplyRasterizerState(s spritebatch.RasterizerState) {
	switch s.Cull {
	case spritebatch.CullClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	case spritebatch.CullCounterClockwise:
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	if s.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ApplySamplerState binds a sampler object for s to unit. Sampler objects
// are created on first use and cached per state.
func (d *Device) ApplySamplerState(unit uint32, s spritebatch.SamplerState) {
	id, ok := d.samplers[s]
	if !ok {
		gl.GenSamplers(1, &id)
		gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, filter(s.MinFilter))
		gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, magFilter(s.MagFilter))
		gl.SamplerParameteri(id, gl.TEXTURE_WRAP_S, wrap(s.WrapS))
		gl.SamplerParameteri(id, gl.TEXTURE_WRAP_T, wrap(s.WrapT))
		d.samplers[s] = id
	}
	gl.BindSampler(unit, id)
}

// ResetSampler unbinds the sampler object from unit.
func (d *Device) ResetSampler(unit uint32) {
	gl.BindSampler(unit, 0)
}

func compareFunc(f spritebatch.CompareFunc) uint32 {
	switch f {
	case spritebatch.CompareLess:
		return gl.LESS
	case spritebatch.CompareGreater:
		return gl.GREATER
	case spritebatch.CompareGreaterEqual:
		return gl.GEQUAL
	case spritebatch.CompareEqual:
		return gl.EQUAL
	case spritebatch.CompareAlways:
		return gl.ALWAYS
	default:
		return gl.LEQUAL
	}
}

func filter(f spritebatch.TextureFilter) int32 {
	switch f {
	case spritebatch.FilterNearest:
		return gl.NEAREST
	case spritebatch.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

// magFilter is filter without mipmap modes, which are invalid for magnification.
func magFilter(f spritebatch.TextureFilter) int32 {
	if f == spritebatch.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrap(w spritebatch.TextureWrap) int32 {
	switch w {
	case spritebatch.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case spritebatch.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}
