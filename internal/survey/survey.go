// Package survey deals batches of games and reduces each one with the
// trivial moves, reporting how far forced play gets on its own.
package survey

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/patience/internal/patience"
	"github.com/lox/patience/internal/runid"
	"github.com/lox/patience/internal/statistics"
)

// Options configures a survey run
type Options struct {
	Rules   patience.Rules
	Deals   int
	Workers int
	Seed    int64 // first deal seed; deal i uses Seed+i

	Logger *log.Logger
	Clock  quartz.Clock

	// IDSource feeds the random part of the run ID; nil uses crypto/rand
	IDSource runid.RandSource

	// OnDeal is called once per reduced deal, from the worker goroutine
	OnDeal func(statistics.DealResult)
}

// Report is the outcome of a survey run
type Report struct {
	ID      string
	Rules   patience.Rules
	Seed    int64
	Workers int
	Started time.Time

	Stats    statistics.Statistics
	Distinct int // distinct reduced fields across the batch
	Elapsed  time.Duration
}

func (r *Report) String() string {
	low, high := r.Stats.ConfidenceInterval95()
	return fmt.Sprintf("deals=%d foundation mean=%.2f (95%% CI %.2f..%.2f) median=%.1f max=%d (seed %d) done=%d cleared=%d distinct=%d elapsed=%s",
		r.Stats.Deals, r.Stats.Mean(), low, high, r.Stats.Median(),
		r.Stats.MaxFound, r.Stats.MaxFoundSeed, r.Stats.Done, r.Stats.Cleared,
		r.Distinct, r.Elapsed)
}

// Run deals opts.Deals games in parallel and reduces each. The batch stops at
// the first error, including cancellation of ctx.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Deals <= 0 {
		return nil, fmt.Errorf("survey: deals must be positive, got %d", opts.Deals)
	}
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("survey: %w", err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	start := clock.Now()
	results := make([]statistics.DealResult, opts.Deals)
	states := newStateSet()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Deals; i++ {
		if gctx.Err() != nil {
			break
		}
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, final := Reduce(seed, opts.Rules)
			states.add(final)
			results[i] = result

			logger.Debug("Deal reduced",
				"seed", seed,
				"foundation", result.FoundationCards,
				"hidden", result.HiddenCards,
				"done", result.Done)
			if opts.OnDeal != nil {
				opts.OnDeal(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("survey: %w", err)
	}
	// a batch cancelled before any deal started has nothing to report
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("survey: %w", err)
	}

	report := &Report{
		ID:       runid.New(start, opts.IDSource),
		Rules:    opts.Rules,
		Seed:     opts.Seed,
		Workers:  workers,
		Started:  start,
		Distinct: states.len(),
	}
	for _, result := range results {
		report.Stats.Add(result)
	}
	report.Elapsed = clock.Since(start)

	logger.Info("Survey complete",
		"id", report.ID,
		"deals", report.Stats.Deals,
		"mean", fmt.Sprintf("%.2f", report.Stats.Mean()),
		"done", report.Stats.Done,
		"cleared", report.Stats.Cleared,
		"distinct", report.Distinct,
		"elapsed", report.Elapsed)
	return report, nil
}

// Reduce deals the game for seed, applies the trivial moves, then turns the
// stock through one full pass applying them again after every turn.
func Reduce(seed int64, rules patience.Rules) (statistics.DealResult, *patience.Field) {
	f := patience.FillWithRandomCards(seed, rules).DoTrivialMoves()
	steps := 1

	draw := max(rules.Draw, 1)
	turns := f.Stock().Len()/draw + 1
	for i := 0; i < turns && f.Stock().Len() > 0; i++ {
		f = f.NextCard().DoTrivialMoves()
		steps++
	}

	return statistics.DealResult{
		Seed:            seed,
		FoundationCards: f.FoundationCards(),
		HiddenCards:     f.HiddenCards(),
		Done:            f.IsDone(),
		Steps:           steps,
	}, f
}

// stateSet holds distinct fields bucketed by hash
type stateSet struct {
	mu      sync.Mutex
	buckets map[uint64][]*patience.Field
	count   int
}

func newStateSet() *stateSet {
	return &stateSet{buckets: make(map[uint64][]*patience.Field)}
}

// add records f and reports whether it was new
func (s *stateSet) add(f *patience.Field) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[f.Hash()]
	for _, seen := range bucket {
		if seen.Equal(f) {
			return false
		}
	}
	s.buckets[f.Hash()] = append(bucket, f)
	s.count++
	return true
}

func (s *stateSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
