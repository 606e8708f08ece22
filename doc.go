/*
Package spritebatch provides a 2D sprite batching renderer for OpenGL-class
devices. Quads are accumulated for a frame, sorted, coalesced into one draw
call per run of equal textures and streamed into a device vertex buffer that
grows as needed.

# Overview

The batch is device-agnostic. It creates its resources and issues its draws
through the Device and Program interfaces; backend/opengl implements them on
go-gl for OpenGL 4.1 core.

# Quick Start

	// Setup (on the GL thread, after gl.Init)
	dev := opengl.NewDevice()
	sb := spritebatch.New(dev)
	if err := sb.Init(); err != nil {
	    return err
	}
	defer sb.Dispose()
	defer spritebatch.DisposeProgram()

	// Game loop
	for !window.ShouldClose() {
	    sb.Begin()
	    sb.Draw(playerTex, mgl32.Vec2{100, 80}, mgl32.Vec2{32, 32}, spritebatch.ColorWhite, 0)
	    sb.Draw(spritebatch.NullHandle, mgl32.Vec2{0, 0}, mgl32.Vec2{200, 20}, spritebatch.ColorRed, 0)
	    if err := sb.End(spritebatch.SortTexture); err != nil {
	        return err
	    }
	    sb.RenderScreen(mgl32.Vec2{1280, 720})
	    window.SwapBuffers()
	}

# Frame Lifecycle

	Idle --Begin--> Accumulating --End--> Finalized --Begin--> Accumulating ...

Draw calls are only accepted while accumulating; others are dropped and
reported by a warning at the next Begin. End outside accumulation returns an
error matching ErrInvalidState. The batches and vertices of a finalized frame
stay valid, and can be rendered any number of times, until the next Begin.

# Draw Methods

	Draw         position, size
	DrawRegion   + atlas UV rectangle (u0, v0, du, dv)
	DrawTiled    + tiling (repeat count per axis)
	DrawPivot    + pivot offset as a fraction of size
	DrawRotated  + rotation in radians, clockwise on a y-down screen
	DrawSprite   everything above as a Sprite value

A texture of NullHandle draws with a 1x1 white texture, so tinted
rectangles go through the same path as sprites.

# Sort Modes

	SortNone         submission order
	SortTexture      by texture handle, fewest draw calls
	SortFrontToBack  ascending depth, for depth-tested opaque sprites
	SortBackToFront  descending depth, for alpha blending

All sorts are stable: sprites with equal keys keep submission order.

# Performance

  - Glyph and batch records are pooled; a steady-state frame allocates nothing
  - One linear pass builds the batches and the vertex array
  - The vertex buffer is reallocated only when a frame outgrows it, to twice
    the frame's sprite count, and never shrinks
  - The sprite program is compiled once per process and shared
*/
package spritebatch
