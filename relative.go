// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

// relBucket is one row of the relative-int32 cascade: deltas in
// [min, max] are flagged by a single boolean prefix and carried as a
// ranged integer over exactly that range. These boundaries are wire
// format, not tuning knobs — changing them breaks every buffer already
// written with this package.
type relBucket struct {
	min, max int64
}

var relBuckets = [...]relBucket{
	{1, 1},
	{2, 6},
	{7, 23},
	{24, 280},
	{281, 4377},
	{4378, 69914},
}

// SerializeInt32Relative moves a strictly positive delta between
// previous and *current through a cascading bucket prefix that favors
// small deltas: one bit for a delta of exactly 1, a handful more for a
// delta under ~70000, and a raw 32-bit fallback beyond that. On write,
// *current must already satisfy *current - previous > 0.
func (s *Stream) SerializeInt32Relative(previous int32, current *int32) bool {
	if s.mode == ModeRead {
		for i, bk := range relBuckets {
			var fits bool
			if !s.SerializeBool(&fits) {
				return false
			}
			if !fits {
				continue
			}
			if i == 0 {
				*current = previous + 1
				return true
			}
			var delta int64
			if !s.SerializeInt(&delta, bk.min, bk.max) {
				return false
			}
			*current = int32(int64(previous) + delta)
			return true
		}
		var raw uint32
		if !s.SerializeRawBits(&raw, 32) {
			return false
		}
		*current = int32(raw)
		return true
	}

	// Write and measure both already know the value; only the
	// underlying primitives differ in what they do with the bits.
	delta := int64(*current) - int64(previous)
	for i, bk := range relBuckets {
		fits := delta <= bk.max
		s.SerializeBool(&fits)
		if !fits {
			continue
		}
		if i > 0 {
			s.SerializeInt(&delta, bk.min, bk.max)
		}
		return true
	}
	raw := uint32(*current)
	return s.SerializeRawBits(&raw, 32)
}

// SerializeSequenceRelative moves a wrap-around-safe 16-bit sequence
// number. previous is the last value observed; *current is serialized
// relative to it by extending it past 65536 when it has wrapped, so the
// underlying relative-int32 encoding always sees a positive delta, then
// reducing the decoded value back modulo 65536.
func (s *Stream) SerializeSequenceRelative(previous uint16, current *uint16) bool {
	if s.mode == ModeRead {
		var extended int32
		if !s.SerializeInt32Relative(int32(previous), &extended) {
			return false
		}
		*current = uint16(uint32(extended) % 65536)
		return true
	}
	extended := int32(*current)
	if previous > *current {
		extended += 65536
	}
	return s.SerializeInt32Relative(int32(previous), &extended)
}
