// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

import (
	"math"
	"unsafe"
)

// SerializeInt moves a ranged integer between *v and the stream, using
// exactly BitsRequired(min, max) bits regardless of mode. On write, *v
// must already satisfy min <= *v <= max (a precondition violation, like
// any other out-of-range write, is the caller's bug, not a detected
// error). On read, a decoded value outside [min, max] rejects the frame
// by returning false instead of assigning *v — this is the core's
// primary defense against a tampered or truncated buffer.
func (s *Stream) SerializeInt(v *int64, min, max int64) bool {
	bits := BitsRequired(uint64(min), uint64(max))
	var u uint64
	if s.mode != ModeRead {
		u = uint64(*v) - uint64(min)
	}
	if !s.SerializeBits(&u, bits) {
		return false
	}
	if s.mode == ModeRead {
		decoded := int64(uint64(min) + u)
		if decoded < min || decoded > max {
			return false
		}
		*v = decoded
	}
	return true
}

// SerializeRawBits moves the low n bits of *v, 1 <= n <= 32, with no
// range checking in either direction.
func (s *Stream) SerializeRawBits(v *uint32, n uint) bool {
	var u uint64
	if s.mode != ModeRead {
		u = uint64(*v)
	}
	if !s.SerializeBits(&u, n) {
		return false
	}
	if s.mode == ModeRead {
		*v = uint32(u)
	}
	return true
}

// SerializeBool moves a single bit between *v and the stream.
func (s *Stream) SerializeBool(v *bool) bool {
	var u uint64
	if s.mode != ModeRead && *v {
		u = 1
	}
	if !s.SerializeBits(&u, 1) {
		return false
	}
	if s.mode == ModeRead {
		*v = u != 0
	}
	return true
}

// SerializeFloat32 moves the raw IEEE-754 bit pattern of *v, byte for
// byte, with no quantization.
func (s *Stream) SerializeFloat32(v *float32) bool {
	var u uint64
	if s.mode != ModeRead {
		u = uint64(math.Float32bits(*v))
	}
	if !s.SerializeBits(&u, 32) {
		return false
	}
	if s.mode == ModeRead {
		*v = math.Float32frombits(uint32(u))
	}
	return true
}

// SerializeFloat64 moves the raw IEEE-754 bit pattern of *v.
func (s *Stream) SerializeFloat64(v *float64) bool {
	var u uint64
	if s.mode != ModeRead {
		u = math.Float64bits(*v)
	}
	if !s.SerializeBits(&u, 64) {
		return false
	}
	if s.mode == ModeRead {
		*v = math.Float64frombits(u)
	}
	return true
}

// SerializeCompressedFloat quantizes *v onto a grid of
// ceil((max-min)/resolution) steps across [min, max] and serializes the
// step index as a ranged integer. On write, values outside [min, max]
// are clamped rather than rejected. Round-trip error is at most
// resolution/2 within the clamped interval.
func (s *Stream) SerializeCompressedFloat(v *float32, min, max, resolution float32) bool {
	delta := float64(max - min)
	steps := uint64(math.Ceil(delta / float64(resolution)))
	var index int64
	if s.mode != ModeRead {
		val := *v
		if val < min {
			val = min
		}
		if val > max {
			val = max
		}
		normalized := float64(val-min) / delta
		index = int64(math.Floor(normalized*float64(steps) + 0.5))
	}
	if !s.SerializeInt(&index, 0, int64(steps)) {
		return false
	}
	if s.mode == ModeRead {
		normalized := float64(index) / float64(steps)
		*v = min + float32(normalized*delta)
	}
	return true
}

// SerializeByteArray moves len(data) raw bytes verbatim; it's a direct
// call-through to the stream's byte primitive with no length prefix.
func (s *Stream) SerializeByteArray(data []byte) bool {
	return s.SerializeBytes(data)
}

// SerializeString moves a length-prefixed string. The length is encoded
// as a ranged integer in [0, maxLength], followed by the raw bytes. On
// write, len(*v) must not exceed maxLength. On read, the destination
// buffer comes from the stream's Allocator and the decoded string
// aliases it (see Allocator); there's no null terminator on the wire,
// the length is authoritative.
func (s *Stream) SerializeString(v *string, maxLength int) bool {
	var length int64
	if s.mode != ModeRead {
		length = int64(len(*v))
	}
	if !s.SerializeInt(&length, 0, int64(maxLength)) {
		return false
	}
	switch s.mode {
	case ModeWrite:
		return s.SerializeBytes([]byte(*v))
	case ModeRead:
		buf := s.alloc.Alloc(int(length))
		if !s.SerializeBytes(buf) {
			return false
		}
		*v = unsafe.String(unsafe.SliceData(buf), len(buf))
		return true
	default: // ModeMeasure
		s.measuredBits += s.measureAlignBits()
		s.measuredBits += uint(length) * 8
		return true
	}
}

// SerializeAlign pads (write), verifies (read), or estimates (measure)
// padding to the next byte boundary. Field-level alias of Stream.Align,
// named to match the rest of the field encoder set.
func (s *Stream) SerializeAlign() bool {
	return s.Align()
}
