package simplex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// test helper silences superfluous logging calls from the mock package
type foo struct {
	t *testing.T
}

func (f foo) Logf(format string, args ...interface{}) {}

func (f foo) Errorf(format string, args ...interface{}) {
	f.t.Errorf(format, args...)
}

func (f foo) FailNow() {
	f.t.FailNow()
}

func silenceT(t *testing.T) mock.TestingT {
	return foo{t}
}

// resetDefault clears the process wide generator so a test can rebuild it
func resetDefault() {
	defaultOnce = sync.Once{}
	defaultGen = nil
	defaultErr = nil
}
