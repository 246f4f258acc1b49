package stat

import (
	"fmt"
	"math"
	"sync"
)

// Summary describes a sample of noise values
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Stdev  float64
	MaxAbs float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.6f max=%.6f mean=%.6f stdev=%.6f max|v|=%.6f", s.Count, s.Min, s.Max, s.Mean, s.Stdev, s.MaxAbs)
}

// Summarize computes a summary over values.  The standard deviation is the sample estimate
// and is zero for fewer than two values.
func Summarize(values []float64) Summary {
	a := NewAccumulator()
	for _, v := range values {
		a.Record(v)
	}
	return a.Summary()
}

// Accumulator records observations one at a time and keeps running moments using Welford's
// method, so samples do not have to be retained.  It is safe for concurrent use.
type Accumulator struct {
	mu sync.Mutex
	m  moments
}

type moments struct {
	count  int
	min    float64
	max    float64
	mean   float64
	m2     float64
	maxAbs float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		m: moments{
			min: math.Inf(1),
			max: math.Inf(-1),
		},
	}
}

// Record adds one observation
func (a *Accumulator) Record(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	m := &a.m
	m.count++
	d := v - m.mean
	m.mean += d / float64(m.count)
	m.m2 += d * (v - m.mean)
	m.min = math.Min(m.min, v)
	m.max = math.Max(m.max, v)
	m.maxAbs = math.Max(m.maxAbs, math.Abs(v))
}

// snapshot returns a consistent copy of the moments
func (a *Accumulator) snapshot() moments {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.m
}

// Merge folds the observations of b into a
func (a *Accumulator) Merge(b *Accumulator) {
	o := b.snapshot()
	if o.count == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	m := &a.m
	n := m.count + o.count
	d := o.mean - m.mean
	m.m2 += o.m2 + d*d*float64(m.count)*float64(o.count)/float64(n)
	m.mean += d * float64(o.count) / float64(n)
	m.count = n
	m.min = math.Min(m.min, o.min)
	m.max = math.Max(m.max, o.max)
	m.maxAbs = math.Max(m.maxAbs, o.maxAbs)
}

func (a *Accumulator) Summary() Summary {
	m := a.snapshot()
	if m.count == 0 {
		return Summary{}
	}
	s := Summary{
		Count:  m.count,
		Min:    m.min,
		Max:    m.max,
		Mean:   m.mean,
		MaxAbs: m.maxAbs,
	}
	if m.count > 1 {
		s.Stdev = math.Sqrt(m.m2 / float64(m.count-1))
	}
	return s
}
