package main

import (
	"context"
	"errors"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-smart-calc/config"
	"go-smart-calc/convert"
	"go-smart-calc/discount"
	"go-smart-calc/expression"
	"go-smart-calc/http"
	"go-smart-calc/logging"
	"go-smart-calc/rates"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load(config.Path())
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ratesService := rates.NewService(cfg.RatesURL, cfg.FetchTimeout)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates_rest"), ratesService)
	ratesService = rates.NewFallbackService(cfg.FetchTimeout, rates.Fallback(), log.With(logger, "component", "rates_fallback"), ratesService)

	convertService, err := convert.New(ctx, ratesService)
	if err != nil {
		return err
	}
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	calcService := expression.NewLoggingService(log.With(logger, "component", "calculate"), expression.NewService())
	discountService := discount.NewLoggingService(log.With(logger, "component", "discount"), discount.NewService())

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	handler := http.NewServer(calcService, convertService, discountService, limiter, log.With(logger, "component", "http"))
	server := &nhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		level.Info(logger).Log("msg", "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
