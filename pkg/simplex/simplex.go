package simplex

import (
	"math"

	"github.com/BTBurke/simplex/pkg/rng"
)

// ErrEntropyUnavailable is returned by New when the operating system cannot seed the
// generator.
var ErrEntropyUnavailable = rng.ErrEntropyUnavailable

// Skew and unskew factors for two dimensions, (sqrt(3)-1)/2 and (3-sqrt(3))/6.
const (
	F2 = 0.366025403784
	G2 = 0.211324865405
)

// Scale is applied to the summed corner contributions.  It was chosen empirically so output
// falls roughly within [-1, 1]; it is not a proven bound.
const Scale = 40.0

// Simplex is a 2D simplex noise field.  It is immutable after construction and safe for
// concurrent use.
type Simplex struct {
	perm *Table
}

// New returns a generator seeded from operating system entropy.
func New() (*Simplex, error) {
	src, err := rng.NewEntropySource()
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// FromSource returns a generator whose table is drawn from src.  The same byte sequence
// always produces the same noise field.
//
// Example:
//
//	s, err := simplex.FromSource(rng.NewSeededSource(1337))
//	if err != nil {
//	    return err
//	}
//	v := s.Noise2D(2.46, 2.64)
func FromSource(src rng.ByteSource) (*Simplex, error) {
	t, err := NewTable(src)
	if err != nil {
		return nil, err
	}
	return FromTable(t), nil
}

// FromTable wraps an existing table.  The caller must not modify t afterwards.
func FromTable(t *Table) *Simplex {
	return &Simplex{perm: t}
}

// Table returns a copy of the generator's permutation table
func (s *Simplex) Table() Table {
	return *s.perm
}

// Noise2D returns the noise value at (x, y), approximately in [-1, 1].  Non-finite inputs
// are not checked.
func (s *Simplex) Noise2D(x, y float64) float64 {
	// skew to find the simplex cell
	sk := (x + y) * F2
	i := math.Floor(x + sk)
	j := math.Floor(y + sk)

	// unskew the cell origin back to (x, y) space
	t := (i + j) * G2
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := middleCorner(x0, y0)

	x1 := x0 - float64(i1) + G2
	y1 := y0 - float64(j1) + G2
	x2 := x0 - 1.0 + 2.0*G2
	y2 := y0 - 1.0 + 2.0*G2

	ii := int(int64(i)) & 255
	jj := int(int64(j)) & 255
	p := s.perm

	gi0 := p[ii+int(p[jj])]
	gi1 := p[ii+i1+int(p[jj+j1])]
	gi2 := p[ii+1+int(p[jj+1])]

	n0 := corner(gi0, x0, y0)
	n1 := corner(gi1, x1, y1)
	n2 := corner(gi2, x2, y2)

	return Scale * (n0 + n1 + n2)
}

// middleCorner returns the (i, j) offset of the second corner of the simplex.  Below the
// diagonal the traversal is (0,0)->(1,0)->(1,1), otherwise (0,0)->(0,1)->(1,1).
func middleCorner(x0, y0 float64) (int, int) {
	if x0 > y0 {
		return 1, 0
	}
	return 0, 1
}

// corner is the falloff weighted contribution of one corner with local offset (x, y).
func corner(gi byte, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * grad2(gi, x, y)
}
