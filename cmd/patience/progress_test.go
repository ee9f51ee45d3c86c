package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/lox/patience/internal/statistics"
)

func TestProgressMonitor(t *testing.T) {
	mClock := quartz.NewMock(t)
	var buf bytes.Buffer
	m := newProgressMonitor(&buf, mClock, 80)

	for i := 0; i < 40; i++ {
		m.OnDeal(statistics.DealResult{})
	}
	assert.Equal(t, "Dealing: "+strings.Repeat(".", 20), buf.String())

	mClock.Advance(4 * time.Second)
	for i := 0; i < 40; i++ {
		m.OnDeal(statistics.DealResult{})
	}
	assert.Equal(t, "Dealing: "+strings.Repeat(".", 40)+" ✓ 80 deals in 4.0s (20/sec)\n", buf.String())
}

func TestProgressMonitorFewDeals(t *testing.T) {
	var buf bytes.Buffer
	m := newProgressMonitor(&buf, quartz.NewMock(t), 3)
	for i := 0; i < 3; i++ {
		m.OnDeal(statistics.DealResult{})
	}
	assert.Contains(t, buf.String(), strings.Repeat(".", progressDots)+" ✓ 3 deals")
}
