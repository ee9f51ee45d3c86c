package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/patience/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"patience.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Deal one seeded game and print it"`
	Survey  SurveyCmd        `cmd:"" help:"Deal a batch of games and report how far trivial moves get"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("patience"),
		kong.Description("Klondike patience game states"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the config file and applies the global flag overrides
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, setupLogger(cfg.LogLevel), nil
}

func setupLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
