// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

import "math/bits"

// log2 returns floor(log2(v)) for v > 0. A portable bit-smear plus
// popcount, independent of any single CPU's bit-scan instruction.
func log2(v uint64) uint {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return uint(bits.OnesCount64(v)) - 1
}

// BitsRequired returns the smallest number of bits b such that
// max-min < 2^b. When min == max it returns 1, not 0, so a formerly
// constant field can widen in a later schema version without the
// reader and writer falling out of lock-step.
//
// min and max are taken as raw bit patterns: callers encoding a signed
// range pass uint64(min) and uint64(max) and rely on two's-complement
// subtraction to recover the true delta even when min is negative.
func BitsRequired(min, max uint64) uint {
	if min == max {
		return 1
	}
	delta := max - min
	return log2(delta) + 1
}
