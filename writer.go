// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

import "encoding/binary"

// BitWriter packs values bit-by-bit, low-bit-first, into a caller-owned
// byte buffer. It knows nothing about field semantics; Stream and the
// field encoders build on top of it.
//
// Values are staged in a 64-bit scratch register and flushed to the
// buffer one 32-bit little-endian word at a time, so the resulting byte
// image is identical to what a byte-wise little-endian bit packer would
// produce. Methods don't return errors on every call since checking each
// one would be too expensive; call Flush once the aggregate is complete
// and check its result.
type BitWriter struct {
	buf         []byte
	scratch     uint64
	scratchBits uint
	bitsWritten uint
	idx         int
}

// NewBitWriter returns a writer over dst. len(dst) must be a positive
// multiple of 4; the writer views dst as a sequence of 32-bit words.
func NewBitWriter(dst []byte) BitWriter {
	return BitWriter{buf: dst}
}

// WriteBits merges the low n bits of value into the stream, 1 <= n <= 32.
// value is masked to n bits; callers that pass an out-of-range value get
// silent truncation rather than a panic, matching the precondition
// contract (the caller is responsible for value < 2^n).
func (w *BitWriter) WriteBits(value uint32, n uint) {
	if n < 32 {
		value &= 1<<n - 1
	}
	w.scratch |= uint64(value) << w.scratchBits
	w.scratchBits += n
	w.bitsWritten += n
	if w.scratchBits >= 32 {
		if w.idx+4 <= len(w.buf) {
			binary.LittleEndian.PutUint32(w.buf[w.idx:], uint32(w.scratch))
		}
		w.idx += 4
		w.scratch >>= 32
		w.scratchBits -= 32
	}
}

// Align pads with zero bits until bitsWritten is a multiple of 8. It
// cannot fail — unlike BitReader.Align, the writer never has anything to
// validate.
func (w *BitWriter) Align() {
	if n := w.AlignBits(); n != 0 {
		w.WriteBits(0, n)
	}
}

// WriteBytes writes p verbatim. The writer must be byte-aligned first
// (call Align if needed). Head and tail bytes that straddle a word
// boundary go through WriteBits; whole words in the middle are copied
// directly into the backing buffer, which is considerably faster than
// per-bit emission for large payloads.
func (w *BitWriter) WriteBytes(p []byte) {
	for len(p) > 0 && w.bitsWritten%32 != 0 {
		w.WriteBits(uint32(p[0]), 8)
		p = p[1:]
	}
	for len(p) >= 4 {
		if w.idx+4 <= len(w.buf) {
			binary.LittleEndian.PutUint32(w.buf[w.idx:], binary.LittleEndian.Uint32(p))
		}
		w.idx += 4
		w.bitsWritten += 32
		p = p[4:]
	}
	for len(p) > 0 {
		w.WriteBits(uint32(p[0]), 8)
		p = p[1:]
	}
}

// Flush writes any residual scratch bits as one final little-endian word
// and clears scratch. Call it once before treating the buffer as the
// encoded message. Returns ErrOverflow if the backing buffer was too
// small to hold everything written. Output that ends mid-byte is not an
// error: the unused high bits of the last byte are zero.
func (w *BitWriter) Flush() error {
	if w.scratchBits > 0 {
		if w.idx+4 <= len(w.buf) {
			binary.LittleEndian.PutUint32(w.buf[w.idx:], uint32(w.scratch))
		}
		w.idx += 4
		w.scratch = 0
		w.scratchBits = 0
	}
	if w.BytesWritten() > len(w.buf) {
		return ErrOverflow
	}
	return nil
}

// AlignBits returns how many padding bits Align would write right now.
func (w *BitWriter) AlignBits() uint {
	return (8 - w.bitsWritten%8) % 8
}

// BitsWritten returns the total number of bits written so far.
func (w *BitWriter) BitsWritten() uint {
	return w.bitsWritten
}

// BytesWritten returns ceil(BitsWritten() / 8).
func (w *BitWriter) BytesWritten() int {
	return int((w.bitsWritten + 7) / 8)
}

// Reset rewinds the writer to its initial position over the same buffer.
func (w *BitWriter) Reset() {
	w.scratch = 0
	w.scratchBits = 0
	w.bitsWritten = 0
	w.idx = 0
}
