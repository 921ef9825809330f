// Package pool provides the growable byte buffer a line sender accumulates
// protocol lines into.
package pool

// LineBufferDefaultSize is the default initial capacity of a sender's output
// buffer. One buffer usually holds many lines between flushes, so it starts
// large enough that typical batches never reallocate.
const LineBufferDefaultSize = 64 * 1024 // 64KiB

// ByteBuffer is a growable byte slice with an amortized growth strategy.
// The underlying slice is exported so encoders can extend it with the
// strconv.Append* style functions and assign the result back.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(initialSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, initialSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// String returns the buffer contents as a string. The bytes are copied.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for
// reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes
// without reallocating. If the buffer already has sufficient spare capacity,
// Grow does nothing.
//
// Small buffers grow by LineBufferDefaultSize to minimize reallocations;
// larger ones grow by 25% of current capacity to balance memory usage and
// reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := LineBufferDefaultSize
	if cap(bb.B) > 4*LineBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}
