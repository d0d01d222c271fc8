// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

// Mode selects which of the three ways a Stream drives a field sequence.
type Mode int

const (
	// ModeWrite packs values into a BitWriter.
	ModeWrite Mode = iota
	// ModeRead pulls values back out of a BitReader.
	ModeRead
	// ModeMeasure performs no I/O and only totals the bit cost.
	ModeMeasure
)

// Stream is a tagged union over a writer, a reader, or a bit counter. A
// single user routine shaped like func(*Stream, *MyType) bool drives all
// three modes, so the writer and the reader can never drift out of
// lock-step: they're the same code path.
type Stream struct {
	mode         Mode
	w            *BitWriter
	r            *BitReader
	alloc        Allocator
	measuredBits uint
}

// NewWriterStream returns a Stream in ModeWrite backed by w.
func NewWriterStream(w *BitWriter) *Stream {
	return &Stream{mode: ModeWrite, w: w}
}

// NewReaderStream returns a Stream in ModeRead backed by r, using the
// default make-backed Allocator for string fields.
func NewReaderStream(r *BitReader) *Stream {
	return NewReaderStreamWithAllocator(r, defaultAllocator{})
}

// NewReaderStreamWithAllocator is NewReaderStream with an injected
// Allocator, for callers that want string reads served from an arena or
// other scoped buffer pool instead of the garbage collector.
func NewReaderStreamWithAllocator(r *BitReader, alloc Allocator) *Stream {
	return &Stream{mode: ModeRead, r: r, alloc: alloc}
}

// NewMeasureStream returns a Stream in ModeMeasure with a zeroed bit
// counter.
func NewMeasureStream() *Stream {
	return &Stream{mode: ModeMeasure}
}

// Mode reports which mode the stream is driving.
func (s *Stream) Mode() Mode {
	return s.mode
}

// measureAlignBits is the measure-mode estimate of the padding Align
// would consume. The source this format is drawn from always assumes the
// worst case (7 bits) here rather than tracking the actual running bit
// count, which double-counts in some schemas but is always a safe upper
// bound. Reproduced as-is; see DESIGN.md for the alternative considered.
func (s *Stream) measureAlignBits() uint {
	return 7
}

// SerializeBits moves n bits, 1 <= n <= 64, between *value and the
// stream. For n > 32 it splits into a 32-bit low half and an n-32 bit
// high half, since BitWriter/BitReader only ever move up to 32 bits in
// one call. Returns false if a read would run past the reader's
// capacity; never fails on write or measure.
func (s *Stream) SerializeBits(value *uint64, n uint) bool {
	switch s.mode {
	case ModeWrite:
		v := *value
		if n <= 32 {
			s.w.WriteBits(uint32(v), n)
		} else {
			s.w.WriteBits(uint32(v), 32)
			s.w.WriteBits(uint32(v>>32), n-32)
		}
		return true
	case ModeRead:
		if n <= 32 {
			if s.r.WouldReadPastEnd(n) {
				return false
			}
			*value = uint64(s.r.ReadBits(n))
			return true
		}
		if s.r.WouldReadPastEnd(32) {
			return false
		}
		low := s.r.ReadBits(32)
		high := n - 32
		if s.r.WouldReadPastEnd(high) {
			return false
		}
		hi := s.r.ReadBits(high)
		*value = uint64(low) | uint64(hi)<<32
		return true
	default: // ModeMeasure
		s.measuredBits += n
		return true
	}
}

// SerializeBytes moves len(data) bytes between data and the stream. On
// write it aligns to a byte boundary first, then bulk-writes. On read it
// aligns (false if the padding was non-zero), checks capacity, then
// bulk-reads. On measure it adds the conservative alignment bound plus
// 8*len(data).
func (s *Stream) SerializeBytes(data []byte) bool {
	switch s.mode {
	case ModeWrite:
		s.w.Align()
		s.w.WriteBytes(data)
		return true
	case ModeRead:
		n := uint(len(data)) * 8
		if s.r.WouldReadPastEnd(s.r.AlignBits()) {
			return false
		}
		if !s.r.Align() {
			return false
		}
		if s.r.WouldReadPastEnd(n) {
			return false
		}
		s.r.ReadBytes(data)
		return true
	default: // ModeMeasure
		s.measuredBits += s.measureAlignBits()
		s.measuredBits += uint(len(data)) * 8
		return true
	}
}

// Align pads (write), verifies and consumes (read), or estimates
// (measure) the padding needed to reach a byte boundary. Read returns
// false on non-zero padding or overflow, rejecting a corrupt frame.
func (s *Stream) Align() bool {
	switch s.mode {
	case ModeWrite:
		s.w.Align()
		return true
	case ModeRead:
		if s.r.WouldReadPastEnd(s.r.AlignBits()) {
			return false
		}
		return s.r.Align()
	default: // ModeMeasure
		s.measuredBits += s.measureAlignBits()
		return true
	}
}

// BitsProcessed returns the running bit count for whichever mode the
// stream is in: bits written, bits read, or bits measured.
func (s *Stream) BitsProcessed() uint {
	switch s.mode {
	case ModeWrite:
		return s.w.BitsWritten()
	case ModeRead:
		return s.r.BitsRead()
	default:
		return s.measuredBits
	}
}

// BytesProcessed returns ceil(BitsProcessed() / 8).
func (s *Stream) BytesProcessed() int {
	return int((s.BitsProcessed() + 7) / 8)
}

// AlignBits returns how many padding bits the next Align call would
// consume or write; for a measure stream this is always the conservative
// constant 7 (see measureAlignBits).
func (s *Stream) AlignBits() uint {
	switch s.mode {
	case ModeWrite:
		return s.w.AlignBits()
	case ModeRead:
		return s.r.AlignBits()
	default:
		return s.measureAlignBits()
	}
}

// Flush flushes the underlying writer. It is a no-op for read and
// measure streams.
func (s *Stream) Flush() error {
	if s.mode == ModeWrite {
		return s.w.Flush()
	}
	return nil
}
