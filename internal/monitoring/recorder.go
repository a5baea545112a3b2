package monitoring

import (
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Recorder accumulates per-row transform latencies for a run summary.
//
// Thread-safety: Record may be called from any worker goroutine.
type Recorder struct {
	mu        sync.Mutex
	durations []float64 // seconds
}

// Summary describes the distribution of recorded latencies.
type Summary struct {
	Count  int
	Mean   time.Duration
	StdDev time.Duration
	P99    time.Duration
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record adds one latency sample.
func (r *Recorder) Record(d time.Duration) {
	r.mu.Lock()
	r.durations = append(r.durations, d.Seconds())
	r.mu.Unlock()
}

// Summarize computes distribution statistics over all samples so far.
// The zero Summary is returned when nothing was recorded.
func (r *Recorder) Summarize() Summary {
	r.mu.Lock()
	samples := make([]float64, len(r.durations))
	copy(samples, r.durations)
	r.mu.Unlock()

	if len(samples) == 0 {
		return Summary{}
	}

	sort.Float64s(samples)
	mean, std := stat.MeanStdDev(samples, nil)
	p99 := stat.Quantile(0.99, stat.Empirical, samples, nil)

	s := Summary{
		Count: len(samples),
		Mean:  secondsToDuration(mean),
		P99:   secondsToDuration(p99),
	}
	// StdDev is NaN for a single sample.
	if len(samples) > 1 {
		s.StdDev = secondsToDuration(std)
	}
	return s
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
