package main

import (
	"math/rand"

	"github.com/dbechrd/bitstream"
)

// payload is a stand-in aggregate covering the core's field encoders
// except the byte array, sequence-relative and 64-bit raw fields, in the
// spirit of the package's own scenario tests. bitbench
// exists to demonstrate the schema against real buffers from the command
// line, not to add new wire semantics.
type payload struct {
	health          int64
	score           int64
	flags           uint32
	alive           bool
	sequence        int32
	position        float32
	health01        float32
	velocity        float64
	name            string
	relativeCurrent int32
}

func serializePayload(s *bitstream.Stream, p *payload) bool {
	if !s.SerializeInt(&p.health, 0, 100) {
		return false
	}
	if !s.SerializeInt(&p.score, -1000, 1000000) {
		return false
	}
	if !s.SerializeRawBits(&p.flags, 16) {
		return false
	}
	if !s.SerializeAlign() {
		return false
	}
	if !s.SerializeBool(&p.alive) {
		return false
	}
	if !s.SerializeFloat32(&p.position) {
		return false
	}
	if !s.SerializeCompressedFloat(&p.health01, 0, 1, 0.01) {
		return false
	}
	if !s.SerializeFloat64(&p.velocity) {
		return false
	}
	if !s.SerializeInt32Relative(p.sequence, &p.relativeCurrent) {
		return false
	}
	return s.SerializeString(&p.name, 64)
}

// samplePayload builds a deterministic-per-seed payload so roundtrip,
// measure and corrupt can all observe the same values for a given --seed.
func samplePayload(seed int64) payload {
	rng := rand.New(rand.NewSource(seed))
	return payload{
		health:          int64(rng.Intn(101)),
		score:           int64(rng.Intn(1001001) - 1000),
		flags:           uint32(rng.Intn(1 << 16)),
		alive:           rng.Intn(2) == 1,
		sequence:        1,
		position:        rng.Float32() * 100,
		health01:        rng.Float32(),
		velocity:        rng.Float64() * 10,
		name:            "bitbench",
		relativeCurrent: int32(1 + rng.Intn(500)),
	}
}
