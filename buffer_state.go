package tscodec

// State stack. Scoped operations save the cursors (and error flags) on a
// strict LIFO stack; the matching PopState restores or reconciles them
// depending on how the frame was pushed.

// PushState saves the current cursors and error flags as a plain checkpoint.
// Returns the level of the pushed frame, 0 for the first push.
func (b *Buffer) PushState() int {
	b.saved = append(b.saved, stateFrame{
		cursorState: b.state,
		reason:      pushFull,
		readErr:     b.readErr,
		writeErr:    b.writeErr,
	})
	return len(b.saved) - 1
}

// PushReadSize temporarily clamps the readable region so that it ends at the
// given absolute byte offset. The buffer becomes read-only until the frame is
// popped; PopState restores the previous write cursor and read-only mode and
// moves the read cursor to the end of the clamped region, whether or not the
// nested code consumed it all.
func (b *Buffer) PushReadSize(size int) int {
	b.saved = append(b.saved, stateFrame{
		cursorState: b.state,
		reason:      pushReadSize,
		readErr:     b.readErr,
		writeErr:    b.writeErr,
	})
	if size < b.state.rbyte {
		size = b.state.rbyte
	}
	if size < b.state.wbyte {
		b.state.wbyte = size
		b.state.wbit = 0
	}
	b.state.readOnly = true
	return len(b.saved) - 1
}

// PushReadSizeFromLength reads a length field of the given bit width, then
// clamps the readable region to that many bytes starting at the current read
// cursor. The read cursor must be byte-aligned after the length field.
func (b *Buffer) PushReadSizeFromLength(lengthBits int) (int, error) {
	length := b.GetBits(lengthBits)
	if b.readErr || b.state.rbit != 0 {
		b.readErr = true
		return -1, ErrReadUnderflow
	}
	return b.PushReadSize(b.state.rbyte + int(length)), nil
}

// PushWriteSize temporarily clamps the writable region so that it ends at the
// given absolute byte offset. PopState restores the previous end of buffer;
// cursors are kept, everything written in the meantime remains valid.
func (b *Buffer) PushWriteSize(size int) int {
	b.saved = append(b.saved, stateFrame{
		cursorState: b.state,
		reason:      pushWriteSize,
		readErr:     b.readErr,
		writeErr:    b.writeErr,
	})
	if size < b.state.wbyte {
		size = b.state.wbyte
	}
	if size < b.state.end {
		b.state.end = size
	}
	return len(b.saved) - 1
}

// PushWriteSequenceWithLeadingLength reserves a length field of the given bit
// width at the current write cursor and advances past it. The write cursor
// must be byte-aligned after the reservation. PopState counts the bytes
// written since then and backpatches the count into the reserved bits, or
// sets the write error flag when the count does not fit.
func (b *Buffer) PushWriteSequenceWithLeadingLength(lengthBits int) (int, error) {
	if b.state.readOnly || b.writeErr || lengthBits < 1 || lengthBits > 64 || (b.state.wbit+lengthBits)%8 != 0 {
		b.writeErr = true
		return -1, ErrWriteOverflow
	}
	b.saved = append(b.saved, stateFrame{
		cursorState: b.state,
		reason:      pushWriteLenSeq,
		lenBits:     lengthBits,
		readErr:     b.readErr,
		writeErr:    b.writeErr,
	})
	b.PutBits(0, lengthBits)
	return len(b.saved) - 1, nil
}

// PopState removes the most recent frame and performs the action matching
// its push. Popping with no saved frame is a programming error and returns
// ErrStateStack.
func (b *Buffer) PopState() error {
	if len(b.saved) == 0 {
		b.readErr = true
		b.writeErr = true
		return ErrStateStack
	}
	f := b.saved[len(b.saved)-1]
	b.saved = b.saved[:len(b.saved)-1]
	switch f.reason {
	case pushFull:
		b.state = f.cursorState
		b.readErr = f.readErr
		b.writeErr = f.writeErr
	case pushReadSize:
		// Skip whatever the nested code left unread, then restore the
		// outer write cursor and read-only mode. Error flags stay sticky
		// so a nested failure is still visible to the caller.
		b.state.rbyte = b.state.wbyte
		b.state.rbit = 0
		b.state.wbyte = f.wbyte
		b.state.wbit = f.wbit
		b.state.readOnly = f.readOnly
	case pushWriteSize:
		b.state.end = f.end
	case pushWriteLenSeq:
		cur := b.state
		written := cur.wbyte - (8*f.wbyte+f.wbit+f.lenBits)/8
		if f.lenBits < 64 && uint64(written) > (uint64(1)<<f.lenBits)-1 {
			b.writeErr = true
			return ErrWriteOverflow
		}
		b.state = f.cursorState
		b.PutBits(uint64(written), f.lenBits)
		b.state = cur
	}
	return nil
}

// DropState removes the most recent frame without restoring anything.
func (b *Buffer) DropState() error {
	if len(b.saved) == 0 {
		return ErrStateStack
	}
	b.saved = b.saved[:len(b.saved)-1]
	return nil
}

// SwapState exchanges the current state with the top checkpoint frame. The
// top frame must have been pushed with PushState; swapping over a framing
// push is a programming error and sets both error flags. With an empty stack
// the current state is pushed, so the caller may always assume the state was
// saved.
func (b *Buffer) SwapState() (int, error) {
	if len(b.saved) == 0 {
		return b.PushState(), nil
	}
	top := &b.saved[len(b.saved)-1]
	if top.reason != pushFull {
		b.readErr = true
		b.writeErr = true
		return -1, ErrStateStack
	}
	top.cursorState, b.state = b.state, top.cursorState
	top.readErr, b.readErr = b.readErr, top.readErr
	top.writeErr, b.writeErr = b.writeErr, top.writeErr
	return len(b.saved) - 1, nil
}

// PushedLevels returns the number of saved frames.
func (b *Buffer) PushedLevels() int { return len(b.saved) }

// ReadFramed reads a length field of the given bit width and runs fn with
// the readable region clamped to that many bytes. The frame is popped on
// every exit path; the read cursor ends just past the framed bytes. Returns
// the pending buffer error, if any, after the pop.
func (b *Buffer) ReadFramed(lengthBits int, fn func(*Buffer)) (err error) {
	if _, err = b.PushReadSizeFromLength(lengthBits); err != nil {
		return err
	}
	defer func() {
		if perr := b.PopState(); err == nil {
			err = perr
		}
		if err == nil {
			err = b.Err()
		}
	}()
	fn(b)
	return nil
}

// WriteFramed reserves a length field of the given bit width, runs fn, then
// backpatches the byte count written by fn into the field. The frame is
// popped on every exit path.
func (b *Buffer) WriteFramed(lengthBits int, fn func(*Buffer)) (err error) {
	if _, err = b.PushWriteSequenceWithLeadingLength(lengthBits); err != nil {
		return err
	}
	defer func() {
		if perr := b.PopState(); err == nil {
			err = perr
		}
		if err == nil {
			err = b.Err()
		}
	}()
	fn(b)
	return nil
}
