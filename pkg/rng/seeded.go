package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

// ErrEntropyUnavailable is returned when the operating system cannot supply
// randomness to seed a source.
var ErrEntropyUnavailable = errors.New("rng: entropy unavailable")

var _ ByteSource = &SeededSource{}

// SeededSource generates a deterministic byte stream from a PCG generator.  Two
// sources with the same seed produce the same bytes.
type SeededSource struct {
	r *mrand.Rand
}

func (s *SeededSource) Byte() (byte, error) {
	return byte(s.r.Uint32() >> 24), nil
}

// NewSeededSource returns a reproducible source for seed
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{
		r: mrand.New(mrand.NewPCG(seed, 0)),
	}
}

// NewEntropySource returns a source seeded from crypto/rand.  The stream is not
// reproducible.
func NewEntropySource() (*SeededSource, error) {
	return newEntropySource(rand.Reader)
}

func newEntropySource(r io.Reader) (*SeededSource, error) {
	var seed [16]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return &SeededSource{
		r: mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))),
	}, nil
}
