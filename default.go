package simplex

import (
	"sync"

	"github.com/BTBurke/simplex/pkg/simplex"
)

var (
	defaultOnce sync.Once
	defaultGen  *simplex.Simplex
	defaultErr  error
)

// Default returns the process wide generator, seeding it from operating system entropy on
// first use.  Every call returns the same generator, or the same error if seeding failed.
func Default() (*simplex.Simplex, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = newDefault()
	})
	return defaultGen, defaultErr
}

var newDefault = simplex.New

// Noise evaluates the default generator at (x, y).  It panics if the default generator
// could not be seeded.
func Noise(x, y float64) float64 {
	gen, err := Default()
	if err != nil {
		panic(err)
	}
	return gen.Noise2D(x, y)
}
