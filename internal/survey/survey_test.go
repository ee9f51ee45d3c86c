package survey

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/patience/internal/patience"
	"github.com/lox/patience/internal/statistics"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{
		Rules:   patience.DefaultRules(),
		Deals:   40,
		Seed:    7,
		Logger:  quietLogger(),
		Clock:   quartz.NewMock(t),
		Workers: 1,
	}

	serial, err := Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 8
	parallel, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, serial.Stats, parallel.Stats, "worker count must not change the results")
	assert.Equal(t, serial.Distinct, parallel.Distinct)
	require.NoError(t, serial.Stats.Validate())
	assert.Equal(t, 40, serial.Stats.Deals)
	assert.LessOrEqual(t, serial.Distinct, 40)
	assert.Positive(t, serial.Distinct)
}

func TestRunMatchesReduce(t *testing.T) {
	rules := patience.DefaultRules()
	var want statistics.Statistics
	for seed := int64(100); seed < 110; seed++ {
		result, _ := Reduce(seed, rules)
		want.Add(result)
	}

	report, err := Run(context.Background(), Options{
		Rules:   rules,
		Deals:   10,
		Seed:    100,
		Workers: 3,
		Logger:  quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, want, report.Stats)
}

func TestRunElapsedUsesClock(t *testing.T) {
	mClock := quartz.NewMock(t)
	var calls atomic.Int32

	report, err := Run(context.Background(), Options{
		Rules:   patience.DefaultRules(),
		Deals:   5,
		Seed:    1,
		Workers: 1,
		Logger:  quietLogger(),
		Clock:   mClock,
		OnDeal: func(statistics.DealResult) {
			calls.Add(1)
			mClock.Advance(time.Second)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int32(5), calls.Load())
	assert.Equal(t, 5*time.Second, report.Elapsed)
	assert.Contains(t, report.String(), "deals=5")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		Rules:   patience.DefaultRules(),
		Deals:   1000,
		Workers: 2,
		Logger:  quietLogger(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen atomic.Int32
	_, err := Run(ctx, Options{
		Rules:   patience.DefaultRules(),
		Deals:   10000,
		Workers: 1,
		Logger:  quietLogger(),
		OnDeal: func(statistics.DealResult) {
			if seen.Add(1) == 3 {
				cancel()
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, seen.Load(), int32(10000))
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no deals", Options{Rules: patience.DefaultRules()}},
		{"bad draw", Options{Rules: patience.Rules{Draw: 0}, Deals: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestReduce(t *testing.T) {
	for _, rules := range []patience.Rules{
		patience.DefaultRules(),
		{Build: patience.BuildAnySuit, EmptyColumn: patience.EmptyAny, Draw: 3},
	} {
		for seed := int64(1); seed <= 20; seed++ {
			result, final := Reduce(seed, rules)
			again, _ := Reduce(seed, rules)

			assert.Equal(t, result, again, "seed %d", seed)
			assert.Equal(t, seed, result.Seed)
			require.NoError(t, final.CheckCards(), "seed %d", seed)
			assert.Equal(t, final.FoundationCards(), result.FoundationCards)
			assert.Equal(t, final.HiddenCards(), result.HiddenCards)
			assert.Equal(t, final.IsDone(), result.Done)
			assert.GreaterOrEqual(t, result.Steps, 1)
			assert.Same(t, final, final.DoTrivialMoves(), "reduced field is a fixpoint")
		}
	}
}

func TestStateSet(t *testing.T) {
	set := newStateSet()
	a := patience.FillWithRandomCards(1, patience.DefaultRules())
	b := patience.FillWithRandomCards(2, patience.DefaultRules())

	assert.True(t, set.add(a))
	assert.False(t, set.add(a))

	reordered := patience.New(a.Stock(), reverse(a.PlayStacks()), a.FinishStacks())
	assert.False(t, set.add(reordered), "column order does not make a new state")

	assert.True(t, set.add(b))
	assert.True(t, set.add(a.NextCard()), "stock position makes a new state")
	assert.Equal(t, 3, set.len())
}

func reverse(stacks []patience.PlayStack) []patience.PlayStack {
	out := make([]patience.PlayStack, len(stacks))
	for i, s := range stacks {
		out[len(stacks)-1-i] = s
	}
	return out
}
