package simulator

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kegliz/gkstab/internal/logger"
	"github.com/kegliz/gkstab/qc/ops"
	"github.com/rs/zerolog"
)

// OneShotRunner runs one Clifford operation batch against a fresh
// StabilizerSimulator and reports the resulting measurement buffer as a
// bit string (slot 0 first), matching the teacher's
// qc/simulator.OneShotRunner contract (RunOnce(circuit) (string, error))
// but retargeted at a flat op batch instead of a laid-out Circuit.
type OneShotRunner interface {
	RunOnce(batch []ops.Op, nQubits int, seed uint64) (string, error)
}

// DefaultRunner runs a batch against a freshly seeded StabilizerSimulator.
// It is stateless and safe to share across goroutines — each call
// builds its own private StabilizerSimulator.
type DefaultRunner struct{}

// RunOnce implements OneShotRunner.
func (DefaultRunner) RunOnce(batch []ops.Op, nQubits int, seed uint64) (string, error) {
	sim := NewSeeded(nQubits, seed)
	buf := sim.MakeBuffer()
	sim.SendReceive(batch, buf)
	return bitString(buf, nQubits), nil
}

func bitString(buf interface{ Get(int) bool }, n int) string {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if buf.Get(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// Options configures a Simulator shot runner.
type Options struct {
	Shots   int // number of independent shots to run; <=0 defaults to 1024
	Workers int // number of concurrent workers; <=0 defaults to runtime.NumCPU()
	Runner  OneShotRunner
	Seed    uint64 // base seed; shot i uses Seed+uint64(i)
}

// Metrics tracks execution statistics across all shots run by a
// Simulator, in the same atomic-counter style as the teacher's
// ItsuMetrics/QSimMetrics.
type Metrics struct {
	totalExecutions atomic.Int64
	successfulRuns  atomic.Int64
	failedRuns      atomic.Int64
	totalTime       atomic.Int64 // nanoseconds
	lastError       atomic.Value // string
}

// Snapshot is a point-in-time read of Metrics.
type Snapshot struct {
	TotalExecutions int64
	SuccessfulRuns  int64
	FailedRuns      int64
	AverageTime     time.Duration
	LastError       string
}

// Simulator runs a fixed operation batch for Shots independent shots
// over a pool of Workers goroutines, each driving its own freshly
// seeded StabilizerSimulator, and assembles a measurement-outcome
// histogram. This is the teacher's qc/simulator.Simulator{Shots,
// Workers, Runner} pattern, retargeted from statevector shots at
// Clifford-tableau shots.
type Simulator struct {
	Shots    int
	Workers  int
	runner   OneShotRunner
	baseSeed uint64
	metrics  Metrics
	log      logger.Logger
}

// NewSimulator builds a Simulator from options, defaulting Shots to
// 1024 and Workers to runtime.NumCPU() (capped at Shots) as the teacher
// does.
func NewSimulator(options Options) *Simulator {
	shots := options.Shots
	if shots <= 0 {
		shots = 1024
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > shots {
		workers = shots
	}
	runner := options.Runner
	if runner == nil {
		runner = DefaultRunner{}
	}
	return &Simulator{
		Shots:    shots,
		Workers:  workers,
		runner:   runner,
		baseSeed: options.Seed,
		log:      *logger.NewLogger(logger.LoggerOptions{Debug: false}),
	}
}

// SetVerbose switches the Simulator's logger to debug level, mirroring
// the teacher's Simulator.SetVerbose.
func (s *Simulator) SetVerbose(verbose bool) {
	if verbose {
		s.log.Logger = s.log.Logger.Level(zerolog.DebugLevel)
	} else {
		s.log.Logger = s.log.Logger.Level(zerolog.InfoLevel)
	}
}

// Run executes the given batch for s.Shots independent shots over
// s.Workers goroutines and returns a histogram of resulting bit
// strings. Each goroutine constructs its own StabilizerSimulator, so no
// Tableau is ever touched from more than one goroutine (spec.md §5).
func (s *Simulator) Run(batch []ops.Op, nQubits int) (map[string]int, error) {
	type result struct {
		bits string
		err  error
	}

	jobs := make(chan int, s.Shots)
	results := make(chan result, s.Shots)
	var wg sync.WaitGroup

	for w := 0; w < s.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for shot := range jobs {
				start := time.Now()
				bits, err := s.runner.RunOnce(batch, nQubits, s.baseSeed+uint64(shot))
				s.metrics.totalExecutions.Add(1)
				s.metrics.totalTime.Add(int64(time.Since(start)))
				if err != nil {
					s.metrics.failedRuns.Add(1)
					s.metrics.lastError.Store(err.Error())
				} else {
					s.metrics.successfulRuns.Add(1)
				}
				s.log.Debug().Int("shot", shot).Str("bits", bits).Msg("shot complete")
				results <- result{bits: bits, err: err}
			}
		}()
	}

	for shot := 0; shot < s.Shots; shot++ {
		jobs <- shot
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	hist := make(map[string]int)
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		hist[r.bits]++
	}
	return hist, nil
}

// MetricsSnapshot returns a snapshot of this Simulator's execution statistics.
func (s *Simulator) MetricsSnapshot() Snapshot {
	totalExec := s.metrics.totalExecutions.Load()
	totalTimeNs := s.metrics.totalTime.Load()
	var avg time.Duration
	if totalExec > 0 {
		avg = time.Duration(totalTimeNs / totalExec)
	}
	lastErr, _ := s.metrics.lastError.Load().(string)
	return Snapshot{
		TotalExecutions: totalExec,
		SuccessfulRuns:  s.metrics.successfulRuns.Load(),
		FailedRuns:      s.metrics.failedRuns.Load(),
		AverageTime:     avg,
		LastError:       lastErr,
	}
}
