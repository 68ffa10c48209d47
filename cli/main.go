package main

import (
	"context"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-smart-calc/config"
	"go-smart-calc/convert"
	"go-smart-calc/logging"
	"go-smart-calc/rates"
)

func main() {
	cfg, err := config.Load(config.Path())
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	converter := func(ctx context.Context) (convert.Service, error) {
		s := rates.NewService(cfg.RatesURL, cfg.FetchTimeout)
		s = rates.NewFallbackService(cfg.FetchTimeout, rates.Fallback(), log.With(logger, "component", "rates_fallback"), s)
		return convert.New(ctx, s)
	}

	app := newApp(os.Stdin, os.Stdout, converter)
	if err := app.Run(os.Args); err != nil {
		level.Debug(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
