package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/patience/internal/patience"
)

func TestDealPrint(t *testing.T) {
	f := patience.FillWithRandomCards(3, patience.DefaultRules())
	cmd := &DealCmd{Plain: true, Moves: true}

	var buf bytes.Buffer
	require.NoError(t, cmd.print(&buf, f, 3))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "seed 3, hash "))
	assert.Contains(t, out, "-- -- -- -- ##")
	assert.Contains(t, out, " moves\n")
	for _, m := range f.Moves() {
		assert.Contains(t, out, m.String())
	}
}

func TestGlobalsLoad(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "debug"}
	cfg, logger, err := g.load()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}
