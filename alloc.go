// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

// Allocator is the sole allocation hook in the core. Deserializing a
// string goes through it, so a caller that embeds this format in an
// arena or pooled-buffer system can supply a scoped allocator instead of
// letting every read hit the garbage collector. (The only other
// allocation on the read side is NewBitReader's word-padded copy of a
// source whose length isn't a multiple of 4.) The decoded string aliases
// the buffer handed back, so that buffer must stay valid and unmodified
// for as long as the caller needs the decoded value.
type Allocator interface {
	Alloc(n int) []byte
}

// defaultAllocator backs NewReaderStream when no Allocator is supplied.
type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) []byte {
	return make([]byte, n)
}
