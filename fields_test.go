// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitstream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeIntSignedRange(t *testing.T) {
	buf := make([]byte, 8)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)

	a, b, c := int64(1), int64(-2), int64(150)
	require.True(t, ws.SerializeInt(&a, -10, 10))
	require.True(t, ws.SerializeInt(&b, -10, 10))
	require.True(t, ws.SerializeInt(&c, -100, 10000))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var ga, gb, gc int64
	require.True(t, rs.SerializeInt(&ga, -10, 10))
	require.True(t, rs.SerializeInt(&gb, -10, 10))
	require.True(t, rs.SerializeInt(&gc, -100, 10000))
	require.Equal(t, a, ga)
	require.Equal(t, b, gb)
	require.Equal(t, c, gc)
}

func TestSerializeIntRejectsOutOfRangeDecode(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	v := int64(5)
	require.True(t, ws.SerializeInt(&v, 0, 10))
	require.NoError(t, ws.Flush())

	// corrupt the encoded payload to a value outside [min, max].
	buf[0] = 0x0F

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var got int64
	require.False(t, rs.SerializeInt(&got, 0, 10))
}

func TestSerializeRawBits(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	d, e, f := uint32(55), uint32(255), uint32(127)
	require.True(t, ws.SerializeRawBits(&d, 6))
	require.True(t, ws.SerializeRawBits(&e, 8))
	require.True(t, ws.SerializeRawBits(&f, 7))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var gd, ge, gf uint32
	require.True(t, rs.SerializeRawBits(&gd, 6))
	require.True(t, rs.SerializeRawBits(&ge, 8))
	require.True(t, rs.SerializeRawBits(&gf, 7))
	require.Equal(t, d, gd)
	require.Equal(t, e, ge)
	require.Equal(t, f, gf)
}

func TestSerializeFloat32PreservesBitPattern(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	v := float32(3.1415926)
	require.True(t, ws.SerializeFloat32(&v))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var got float32
	require.True(t, rs.SerializeFloat32(&got))
	require.Equal(t, math.Float32bits(v), math.Float32bits(got))
}

func TestSerializeFloat64PreservesBitPattern(t *testing.T) {
	buf := make([]byte, 8)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	v := 1.0 / 3.0
	require.True(t, ws.SerializeFloat64(&v))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var got float64
	require.True(t, rs.SerializeFloat64(&got))
	require.Equal(t, v, got)
}

func TestSerializeCompressedFloat(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	v := float32(2.13)
	require.True(t, ws.SerializeCompressedFloat(&v, 0, 10, 0.01))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var got float32
	require.True(t, rs.SerializeCompressedFloat(&got, 0, 10, 0.01))
	require.InDelta(t, 2.13, got, 0.005)
}

func TestSerializeCompressedFloatClampsOnWrite(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	v := float32(99)
	require.True(t, ws.SerializeCompressedFloat(&v, 0, 10, 0.1))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	var got float32
	require.True(t, rs.SerializeCompressedFloat(&got, 0, 10, 0.1))
	require.InDelta(t, 10, got, 0.05)
}

func TestSerializeByteArrayAndString(t *testing.T) {
	buf := make([]byte, 64)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)

	payload := make([]byte, 17)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.True(t, ws.SerializeByteArray(payload))

	str := "Hello, Sailor!"
	require.True(t, ws.SerializeString(&str, 256))
	require.NoError(t, ws.Flush())

	r := NewBitReader(buf)
	rs := NewReaderStream(&r)
	got := make([]byte, 17)
	require.True(t, rs.SerializeByteArray(got))
	require.Equal(t, payload, got)

	var gotStr string
	require.True(t, rs.SerializeString(&gotStr, 256))
	require.Equal(t, str, gotStr)
}

// A length over maxLength is a write-side precondition violation, which
// the writer does not detect: the write still reports success.
func TestSerializeStringTooLongNotCheckedOnWrite(t *testing.T) {
	buf := make([]byte, 64)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	str := "this string is far too long for the declared max"
	require.True(t, ws.SerializeString(&str, 4))
}

func TestSerializeStringMeasureMatchesWrite(t *testing.T) {
	str := "Hello, Sailor!"
	write := func(s *Stream) {
		v := str
		s.SerializeString(&v, 256)
	}

	buf := make([]byte, 64)
	w := NewBitWriter(buf)
	ws := NewWriterStream(&w)
	write(ws)
	require.NoError(t, ws.Flush())

	ms := NewMeasureStream()
	write(ms)
	require.Equal(t, ws.BitsProcessed(), ms.BitsProcessed())
}
