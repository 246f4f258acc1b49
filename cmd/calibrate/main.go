package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/BTBurke/simplex/pkg/rng"
	"github.com/BTBurke/simplex/pkg/simplex"
	"github.com/BTBurke/simplex/pkg/stat"
	"github.com/spf13/pflag"
)

const (
	Low  float64 = -50.0
	High float64 = 50.0
	Step float64 = 0.1
)

var wg sync.WaitGroup

type results struct {
	name  string
	mu    sync.Mutex
	val   map[uint64]stat.Summary
	total *stat.Accumulator
}

func (r *results) record(seed uint64, s stat.Summary, acc *stat.Accumulator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val[seed] = s
	r.total.Merge(acc)
}

func newResults(name string) *results {
	return &results{
		name:  name,
		val:   make(map[uint64]stat.Summary),
		total: stat.NewAccumulator(),
	}
}

func main() {
	name := pflag.String("name", "simplex-range", "Name of the results file, written as <name>.txt")
	seeds := pflag.Int("seeds", 16, "Number of seeded generators to sample")
	first := pflag.Uint64("first-seed", 1, "Seed of the first generator")
	procs := pflag.Int("procs", 4, "Number of generators sampled concurrently")
	pflag.Parse()

	res := newResults(*name)
	start := time.Now()
	sem := make(chan struct{}, *procs)
	for i := 0; i < *seeds; i++ {
		seed := *first + uint64(i)
		wg.Add(1)
		sem <- struct{}{}
		log.Printf("start seed=%d\n", seed)
		go func() {
			defer func() { <-sem }()
			sampleRange(res, seed)
		}()
	}
	wg.Wait()
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))

	total := res.total.Summary()
	fmt.Printf("Overall: %s\n", total)
	if total.MaxAbs > 0 {
		fmt.Printf("Scale for max|v| = 1: %.4f (current %.1f)\n", simplex.Scale/total.MaxAbs, simplex.Scale)
	}

	keys := make([]uint64, 0, len(res.val))
	for seed := range res.val {
		keys = append(keys, seed)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var b bytes.Buffer
	for _, seed := range keys {
		s := res.val[seed]
		b.WriteString(fmt.Sprintf("%d %f %f %f %f\n", seed, s.Min, s.Max, s.Mean, s.Stdev))
	}
	if err := ioutil.WriteFile(fmt.Sprintf("%s.txt", res.name), b.Bytes(), 0644); err != nil {
		log.Fatalf("could not write results: %v", err)
	}
}

func sampleRange(results *results, seed uint64) {
	defer wg.Done()
	gen, err := simplex.FromSource(rng.NewSeededSource(seed))
	if err != nil {
		log.Fatalf("unexpected error constructing generator: %v", err)
	}

	acc := stat.NewAccumulator()
	n := int(math.Round((High-Low)/Step)) + 1
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			acc.Record(gen.Noise2D(Low+float64(a)*Step, Low+float64(b)*Step))
		}
	}
	s := acc.Summary()
	fmt.Printf("Result: seed=%d %s\n", seed, s)
	results.record(seed, s, acc)
}
