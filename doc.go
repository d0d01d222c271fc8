// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package bitstream provides an unattributed bitpacked binary serialization
core: a BitWriter/BitReader pair that packs arbitrary-width integer
fields into a byte buffer with no field tags, no lengths, and no
self-synchronization, plus a Stream that lets one user routine drive both
encoding and decoding against the same field schema.

A typical schema routine looks like this:

	func serializePlayer(s *bitstream.Stream, p *Player) bool {
		if !s.SerializeInt(&p.Health, 0, 100) {
			return false
		}
		if !s.SerializeFloat32(&p.Facing) {
			return false
		}
		return s.SerializeString(&p.Name, 32)
	}

Calling it with a write stream packs the fields; calling it again with a
read stream over the produced bytes pulls the same fields back out, in
the same order, bit-for-bit. Calling it with a measure stream runs no I/O
at all and only totals the bit cost of the schema:

	buf := make([]byte, 64)
	w := bitstream.NewBitWriter(buf)
	ws := bitstream.NewWriterStream(&w)
	serializePlayer(ws, &p)
	ws.Flush()

	r := bitstream.NewBitReader(buf)
	rs := bitstream.NewReaderStream(&r)
	var decoded Player
	if !serializePlayer(rs, &decoded) {
		// truncated or tampered frame; reject it
	}

Because there is no self-describing metadata, the reader must apply the
exact same call sequence the writer did or the stream is corrupt. The
format is little-endian by definition: words are always stored and
loaded in little-endian byte order, whatever the host's byte order.
*/
package bitstream
