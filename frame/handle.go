package frame

// FrameHandle wraps an acquired frame. It is valid for exactly one
// record, submit and present cycle. Configuring the surface invalidates
// a handle that is still in flight.
type FrameHandle struct {
	frame      Frame
	generation uint64
	consumed   bool
}

func newFrameHandle(frame Frame, generation uint64) *FrameHandle {
	return &FrameHandle{frame: frame, generation: generation}
}

func (h *FrameHandle) valid(generation uint64) bool {
	return !h.consumed && h.generation == generation
}

// take returns the underlying frame and marks the handle as consumed.
func (h *FrameHandle) take(generation uint64) (Frame, error) {
	if !h.valid(generation) {
		return nil, ErrFrameConsumed
	}

	h.consumed = true
	return h.frame, nil
}

// discard releases the frame if it was not yet consumed.
func (h *FrameHandle) discard() {
	if h.consumed {
		return
	}

	h.consumed = true
	h.frame.Discard()
}
