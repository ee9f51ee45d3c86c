package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/lox/patience/internal/display"
	"github.com/lox/patience/internal/patience"
)

// DealCmd prints a single dealt game
type DealCmd struct {
	Seed    *int64 `help:"Deal seed (random if unset)"`
	Trivial bool   `help:"Apply trivial moves before printing"`
	Turns   int    `help:"Turn the stock this many times, applying trivial moves after each turn when --trivial is set"`
	Moves   bool   `help:"List the legal moves after the layout"`
	Plain   bool   `help:"Disable colour output"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("Dealing", "seed", seed, "build", rules.Build, "emptyColumn", rules.EmptyColumn, "draw", rules.Draw)

	f := patience.FillWithRandomCards(seed, rules)
	if c.Trivial {
		f = f.DoTrivialMoves()
	}
	for i := 0; i < c.Turns; i++ {
		f = f.NextCard()
		if c.Trivial {
			f = f.DoTrivialMoves()
		}
	}
	if err := f.CheckCards(); err != nil {
		return fmt.Errorf("dealt field is inconsistent: %w", err)
	}

	return c.print(os.Stdout, f, seed)
}

func (c *DealCmd) print(w io.Writer, f *patience.Field, seed int64) error {
	var opts []display.Option
	if c.Plain {
		opts = append(opts, display.WithProfile(termenv.Ascii))
	}

	if _, err := fmt.Fprintf(w, "seed %d, hash %016x\n\n", seed, f.Hash()); err != nil {
		return err
	}
	if err := display.Dump(w, f, opts...); err != nil {
		return err
	}
	if !c.Moves {
		return nil
	}

	moves := f.Moves()
	if _, err := fmt.Fprintf(w, "\n%d moves\n", len(moves)); err != nil {
		return err
	}
	for _, m := range moves {
		if _, err := fmt.Fprintln(w, " ", m); err != nil {
			return err
		}
	}
	return nil
}
