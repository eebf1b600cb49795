package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "github.com/github-code-quality-study/review-api-P03/internal/adapters/http_server"
	"github.com/github-code-quality-study/review-api-P03/internal/adapters/observability"
	"github.com/github-code-quality-study/review-api-P03/internal/adapters/vader"
	"github.com/github-code-quality-study/review-api-P03/internal/app"
	"github.com/github-code-quality-study/review-api-P03/internal/shared"
	"github.com/github-code-quality-study/review-api-P03/internal/storage/memory"
	"github.com/github-code-quality-study/review-api-P03/internal/storage/seed"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// seed the in-memory store once at boot
	reviews, err := seed.LoadCSV(cfg.DataFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.DataFile).Msg("loading seed reviews failed")
	}
	log.Info().Int("count", len(reviews)).Str("file", cfg.DataFile).Msg("seed reviews loaded")

	// deps
	store := memory.New(reviews)
	scorer := vader.New()
	q := app.NewQueryService(store, scorer)
	c := app.NewReviewService(store, scorer)

	// http
	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}
