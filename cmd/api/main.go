package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"flex_reviews/internal/adapters/approvals"
	"flex_reviews/internal/adapters/googleplaces"
	"flex_reviews/internal/adapters/hostaway"
	server "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.HostawayKey == "" || cfg.HostawayAcct == "" {
		log.Fatal().Msg("HOSTAWAY_API_KEY and HOSTAWAY_ACCOUNT_ID are required")
	}

	observability.Serve(cfg.MetricsAddr)

	// deps
	store := approvals.New(cfg.DataDir)
	reviews := app.NewReviewService(store)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(reviews, cache, cfg.CacheTTL)

	hostawayFeed := hostaway.New(cfg.HostawayBase, cfg.HostawayKey, cfg.HostawayAcct, 5)
	placesFeed := googleplaces.New(googleplaces.DefaultBase, cfg.GoogleKey, 5)
	ing := app.NewIngestionService(hostawayFeed, placesFeed, reviews)

	warmUp(context.Background(), ing, cfg.Workers)
	q.Invalidate()

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Ing: ing})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// warmUp loads the repository before the server starts taking traffic: one
// property-management batch, then the places feed per tracked property under
// a bounded worker pool.
func warmUp(ctx context.Context, ing *app.IngestionService, workers int) {
	if _, err := ing.IngestHostaway(ctx); err != nil {
		log.Warn().Err(err).Msg("hostaway warm-up failed")
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	for _, p := range shared.Properties {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("semaphore acquire failed")
			break
		}
		wg.Add(1)
		go func(p shared.Property) {
			defer wg.Done()
			defer sem.Release(1)
			if _, err := ing.IngestGoogle(ctx, p.Name, p.Address); err != nil {
				log.Warn().Str("property", p.Name).Err(err).Msg("google warm-up failed")
			}
		}(p)
	}
	wg.Wait()
	log.Info().Msg("warm-up ingestion completed")
}
