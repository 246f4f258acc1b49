package simplex

import "github.com/BTBurke/simplex/pkg/rng"

// Table is the doubled permutation table used to hash cell coordinates.  The upper half
// repeats the lower half so lookups of the form table[i+1+table[j+1]] never need to
// wrap.
//
// The base is 256 independently drawn bytes, not a shuffle of 0..255, so values can repeat
// and some can be missing.
type Table [512]byte

// NewTable draws 256 bytes from src and doubles them into a table.  An error from
// src is returned unchanged.
func NewTable(src rng.ByteSource) (*Table, error) {
	var base [256]byte
	for i := range base {
		b, err := src.Byte()
		if err != nil {
			return nil, err
		}
		base[i] = b
	}
	return TableFromBase(base), nil
}

// TableFromBase builds a table from an explicit 256 entry base
func TableFromBase(base [256]byte) *Table {
	var t Table
	for k := range t {
		t[k] = base[k&255]
	}
	return &t
}

// Base returns a copy of the lower half of the table
func (t *Table) Base() [256]byte {
	var out [256]byte
	copy(out[:], t[:256])
	return out
}
