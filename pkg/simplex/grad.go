package simplex

// grad2 uses the low 3 bits of hash to pick one of 8 gradients and returns its dot product
// with (x, y).  The gradients are (±1, ±2) and (±2, ±1), so no normalization is done.
func grad2(hash byte, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + 2.0*v
}
