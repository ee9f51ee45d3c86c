package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/patience/internal/survey"
)

// SurveyCmd runs a batch survey of dealt games
type SurveyCmd struct {
	Deals    *int   `help:"Number of deals (overrides config)"`
	Workers  *int   `help:"Parallel workers (overrides config)"`
	Seed     *int64 `help:"First deal seed (overrides config)"`
	Output   string `short:"o" help:"Write the report as JSON to this file"`
	Progress bool   `help:"Print progress dots to stderr"`
}

func (c *SurveyCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Deals != nil {
		cfg.Survey.Deals = *c.Deals
	}
	if c.Workers != nil {
		cfg.Survey.Workers = *c.Workers
	}
	if c.Seed != nil {
		cfg.Survey.Seed = *c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rules, err := cfg.GameRules()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting survey",
		"deals", cfg.Survey.Deals,
		"workers", cfg.Survey.Workers,
		"seed", cfg.Survey.Seed,
		"build", rules.Build,
		"draw", rules.Draw)

	clock := quartz.NewReal()
	opts := survey.Options{
		Rules:   rules,
		Deals:   cfg.Survey.Deals,
		Workers: cfg.Survey.Workers,
		Seed:    cfg.Survey.Seed,
		Logger:  logger,
		Clock:   clock,
	}
	if c.Progress {
		opts.OnDeal = newProgressMonitor(os.Stderr, clock, cfg.Survey.Deals).OnDeal
	}

	report, err := survey.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Println(report)
	if c.Output != "" {
		if err := report.WriteFile(c.Output); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "path", c.Output, "id", report.ID)
	}
	return nil
}
