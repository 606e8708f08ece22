package spritebatch

import "log/slog"

// State is the frame lifecycle state of a SpriteBatch.
type State int

const (
	StateIdle         State = iota // No frame begun yet
	StateAccumulating              // Between Begin and End, draws are accepted
	StateFinalized                 // After End, batches are ready to render
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAccumulating:
		return "accumulating"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// SpriteBatch accumulates sprite quads for a frame and renders them with as
// few draw calls as the chosen sort mode allows.
//
// A frame is Begin, any number of Draw calls, End, then Render as often as
// needed until the next Begin. A SpriteBatch is not safe for concurrent use
// and must only be used on the thread that owns the graphics context.
type SpriteBatch struct {
	dev     Device
	log     *slog.Logger
	program Program // shared, not owned
	pixel   uint32  // 1x1 white texture drawn for NullHandle
	stream  vertexStream
	state   State

	glyphs    []*Glyph
	glyphPool recycler[Glyph]
	batches   []*Batch
	batchPool recycler[Batch]
	verts     []Vertex

	dropped int // draws rejected since the last Begin
}

// New creates a sprite batch drawing through dev. No device resources are
// created until Init.
func New(dev Device, opts ...Option) *SpriteBatch {
	sb := &SpriteBatch{
		dev: dev,
		log: batchLogger,
		stream: vertexStream{
			dev:      dev,
			capacity: InitialGlyphCapacity,
			usage:    UsageDynamic,
		},
	}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

// Init creates the device resources of the batch: the shared sprite program
// if no batch has created it yet, the vertex array and buffer, and the white
// pixel texture. Calling Init on an initialized batch only re-acquires the
// shared program if DisposeProgram released it.
// Failures match ErrResourceCreationFailed and leave the batch uninitialized.
func (sb *SpriteBatch) Init() error {
	if sb.stream.ready() {
		if isSharedProgram(sb.program) {
			return nil
		}
		program, err := acquireProgram(sb.dev)
		if err != nil {
			return err
		}
		sb.program = program
		sb.log.Debug("sprite program re-acquired", "program", program.ID())
		return nil
	}

	program, err := acquireProgram(sb.dev)
	if err != nil {
		return err
	}
	if err := sb.stream.create(program); err != nil {
		return err
	}

	white := []uint8{0xff, 0xff, 0xff, 0xff}
	pixel, err := sb.dev.CreateTexture(1, 1, white)
	if err == nil && pixel == NullHandle {
		err = resourceError("pixel texture", nil)
	} else if err != nil {
		err = resourceError("pixel texture", err)
	}
	if err != nil {
		sb.stream.release()
		return err
	}

	sb.program = program
	sb.pixel = pixel
	sb.log.Debug("sprite batch initialized",
		"vao", sb.stream.vao, "vbo", sb.stream.vbo, "capacity", sb.stream.capacity)
	return nil
}

// Dispose deletes the vertex array, vertex buffer and pixel texture and drops
// any pending glyphs and batches. It is safe to call more than once. The
// shared program is left alone; see DisposeProgram.
func (sb *SpriteBatch) Dispose() {
	sb.stream.release()
	if sb.pixel != NullHandle {
		sb.dev.DeleteTexture(sb.pixel)
		sb.pixel = NullHandle
	}
	sb.program = nil

	sb.recycleFrame()
	sb.glyphPool.freeAll()
	sb.batchPool.freeAll()
	sb.verts = nil
	sb.state = StateIdle
	sb.dropped = 0
}

// Begin starts a new frame. Batches and vertices of the previous frame are
// discarded.
func (sb *SpriteBatch) Begin() {
	if len(sb.glyphs) > 0 {
		sb.log.Debug("discarding glyphs of an unfinished frame", "count", len(sb.glyphs))
	}
	sb.recycleFrame()
	if sb.dropped > 0 {
		sb.log.Warn("dropped draws issued outside Begin/End", "count", sb.dropped)
		sb.dropped = 0
	}
	sb.state = StateAccumulating
}

// recycleFrame returns every glyph and batch of the current frame to the pools.
func (sb *SpriteBatch) recycleFrame() {
	for _, g := range sb.glyphs {
		sb.glyphPool.recycle(g)
	}
	clear(sb.glyphs)
	sb.glyphs = sb.glyphs[:0]

	for _, b := range sb.batches {
		sb.batchPool.recycle(b)
	}
	clear(sb.batches)
	sb.batches = sb.batches[:0]

	sb.verts = sb.verts[:0]
}

// add queues one sprite. Draws outside Begin/End are dropped.
func (sb *SpriteBatch) add(s *Sprite) {
	if sb.state != StateAccumulating {
		sb.dropped++
		sb.log.Debug("draw rejected", "state", sb.state, "texture", s.Texture)
		return
	}
	tex := s.Texture
	if tex == NullHandle {
		tex = sb.pixel
	}
	g := sb.glyphPool.create()
	s.build(g, tex)
	sb.glyphs = append(sb.glyphs, g)
}

// End finishes the frame: glyphs are sorted by mode, coalesced into batches
// and uploaded to the vertex buffer. A frame without glyphs uploads nothing.
//
// End returns an error matching ErrInvalidState when no frame is being
// accumulated or the batch is not initialized.
// If the upload fails the frame is dropped and Render draws nothing.
func (sb *SpriteBatch) End(mode SortMode) error {
	if sb.state != StateAccumulating {
		return &StateError{Op: "End", State: sb.state}
	}
	if !sb.stream.ready() {
		return &StateError{Op: "End", State: sb.state, Reason: "not initialized"}
	}
	sb.state = StateFinalized

	glyphs := len(sb.glyphs)
	if glyphs == 0 {
		return nil
	}

	sortGlyphs(sb.glyphs, mode)
	sb.generateBatches()

	before := sb.stream.capacity
	grew, err := sb.stream.upload(sb.verts, glyphs)
	if grew {
		sb.log.Debug("vertex buffer grown",
			"from", before, "to", sb.stream.capacity, "glyphs", glyphs, "reallocs", sb.stream.reallocs)
	}
	if err != nil {
		// The buffer does not hold this frame; leave nothing to draw.
		sb.recycleFrame()
		return err
	}
	return nil
}

// State returns the lifecycle state.
func (sb *SpriteBatch) State() State { return sb.state }

// Pending returns the glyphs queued in the current frame, in submission
// order. The slice is owned by the batch and valid until End or Begin.
func (sb *SpriteBatch) Pending() []*Glyph { return sb.glyphs }

// Batches returns a copy of the batches of the last finalized frame.
func (sb *SpriteBatch) Batches() []Batch {
	out := make([]Batch, len(sb.batches))
	for i, b := range sb.batches {
		out[i] = *b
	}
	return out
}

// Vertices returns the flattened vertices of the last finalized frame.
// The slice is owned by the batch and valid until the next Begin.
func (sb *SpriteBatch) Vertices() []Vertex { return sb.verts }

// Capacity returns the vertex buffer capacity in glyphs.
func (sb *SpriteBatch) Capacity() int { return sb.stream.capacity }

// PixelTexture returns the white texture drawn for NullHandle.
func (sb *SpriteBatch) PixelTexture() uint32 { return sb.pixel }

// VertexArray returns the vertex array and vertex buffer handles.
func (sb *SpriteBatch) VertexArray() (vao, vbo uint32) { return sb.stream.vao, sb.stream.vbo }
