package rng

import (
	"bufio"
	"io"
)

var _ ByteSource = &ReaderSource{}
var _ ByteSource = &FixedSource{}

// ReaderSource reads bytes from an underlying reader such as a seed file.  Read errors,
// including io.EOF, are returned unchanged.
type ReaderSource struct {
	r *bufio.Reader
}

func (s *ReaderSource) Byte() (byte, error) {
	return s.r.ReadByte()
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// FixedSource replays a fixed sequence of bytes, starting over when it reaches the end.  An
// empty sequence always yields 0.
type FixedSource struct {
	b   []byte
	pos int
}

func (s *FixedSource) Byte() (byte, error) {
	if len(s.b) == 0 {
		return 0, nil
	}
	out := s.b[s.pos]
	s.pos = (s.pos + 1) % len(s.b)
	return out, nil
}

func NewFixedSource(b []byte) *FixedSource {
	out := make([]byte, len(b))
	copy(out, b)
	return &FixedSource{b: out}
}
