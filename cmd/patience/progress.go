package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/patience/internal/statistics"
)

const progressDots = 40

// progressMonitor prints a row of dots as survey deals complete
type progressMonitor struct {
	mu          sync.Mutex
	w           io.Writer
	clock       quartz.Clock
	total       int
	completed   int
	dotsPrinted int
	start       time.Time
}

func newProgressMonitor(w io.Writer, clock quartz.Clock, total int) *progressMonitor {
	if total < 1 {
		total = 1
	}
	fmt.Fprint(w, "Dealing: ")
	return &progressMonitor{w: w, clock: clock, total: total, start: clock.Now()}
}

// OnDeal is called after each deal completes
func (m *progressMonitor) OnDeal(statistics.DealResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.completed++
	target := min(m.completed*progressDots/m.total, progressDots)
	for ; m.dotsPrinted < target; m.dotsPrinted++ {
		fmt.Fprint(m.w, ".")
	}

	if m.completed == m.total {
		duration := m.clock.Since(m.start)
		rate := 0.0
		if duration > 0 {
			rate = float64(m.total) / duration.Seconds()
		}
		fmt.Fprintf(m.w, " ✓ %d deals in %.1fs (%.0f/sec)\n", m.total, duration.Seconds(), rate)
	}
}
