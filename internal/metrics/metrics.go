// Package metrics implements the in-memory timing/memory/error counter
// collector (§4.5): three maps keyed by operation name, each sample
// vector a bounded sliding window, exported as count/min/avg/max and
// nearest-rank p50/p95/p99. Grounded on the reference implementation's
// timed_operation! macro convention (maos-core/src/metrics/mod.rs); the
// collector/report internals themselves were filtered from the retrieval
// corpus, so the percentile arithmetic follows the spec's GLOSSARY
// definition directly: value at position ceil(k*n/100), 1-indexed.
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/maos-project/maos/internal/constants"
)

// Collector is a thread-safe recorder of execution samples, memory
// samples, and error counters, one ring per operation name.
type Collector struct {
	mu            sync.Mutex
	execSamples   map[string][]float64
	memSamples    map[string][]float64
	errorCounters map[string]int64
	capacity      int
}

// New returns a Collector whose sample rings are bounded at capacity (the
// spec's default is 1000, see constants.MaxSamplesPerOperation).
func New() *Collector {
	return &Collector{
		execSamples:   make(map[string][]float64),
		memSamples:    make(map[string][]float64),
		errorCounters: make(map[string]int64),
		capacity:      constants.MaxSamplesPerOperation,
	}
}

// RecordExecution appends a timing sample (milliseconds) under label,
// dropping the oldest sample once the ring is at capacity.
func (c *Collector) RecordExecution(label string, ms float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execSamples[label] = appendBounded(c.execSamples[label], ms, c.capacity)
}

// RecordMemory appends a memory sample (bytes) under label.
func (c *Collector) RecordMemory(label string, bytes float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memSamples[label] = appendBounded(c.memSamples[label], bytes, c.capacity)
}

// IncrementError bumps the monotonic error counter for label.
func (c *Collector) IncrementError(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCounters[label]++
}

func appendBounded(samples []float64, value float64, capacity int) []float64 {
	samples = append(samples, value)
	if len(samples) > capacity {
		samples = samples[len(samples)-capacity:]
	}
	return samples
}

// Summary is the per-operation export shape (§4.5).
type Summary struct {
	Count int64
	Min   float64
	Avg   float64
	Max   float64
	P50   float64
	P95   float64
	P99   float64
}

// ExportExecution returns the Summary for label's execution-time samples.
func (c *Collector) ExportExecution(label string) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return summarize(c.execSamples[label])
}

// ExportMemory returns the Summary for label's memory samples.
func (c *Collector) ExportMemory(label string) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return summarize(c.memSamples[label])
}

// ExportErrorCount returns the monotonic error counter for label.
func (c *Collector) ExportErrorCount(label string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorCounters[label]
}

func summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Summary{
		Count: int64(len(sorted)),
		Min:   sorted[0],
		Avg:   sum / float64(len(sorted)),
		Max:   sorted[len(sorted)-1],
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
	}
}

// percentile implements the nearest-rank method on an already-sorted
// slice: the value at position ceil(k*n/100), 1-indexed (GLOSSARY
// "Nearest-rank percentile").
func percentile(sorted []float64, k int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := (k*n + 99) / 100 // ceil(k*n/100)
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}

// Timed runs fn, recording its wall-clock duration in milliseconds under
// label, and returns fn's error.
func (c *Collector) Timed(label string, fn func() error) error {
	start := time.Now()
	err := fn()
	c.RecordExecution(label, float64(time.Since(start).Microseconds())/1000.0)
	if err != nil {
		c.IncrementError(label)
	}
	return err
}
