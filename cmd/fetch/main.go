// Command fetch is a feed probe: it pulls both review sources, normalizes
// the batches and dumps them as JSON, without starting the API.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/approvals"
	"flex_reviews/internal/adapters/googleplaces"
	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/app"
	"flex_reviews/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	store := approvals.New(cfg.DataDir)
	reviews := app.NewReviewService(store)
	ing := app.NewIngestionService(
		hostaway.New(cfg.HostawayBase, cfg.HostawayKey, cfg.HostawayAcct, 5),
		googleplaces.New(googleplaces.DefaultBase, cfg.GoogleKey, 5),
		reviews,
	)

	if _, err := ing.IngestHostaway(ctx); err != nil {
		log.Fatal().Err(err).Msg("hostaway fetch failed")
	}
	for _, p := range shared.Properties {
		if _, err := ing.IngestGoogle(ctx, p.Name, p.Address); err != nil {
			log.Fatal().Str("property", p.Name).Err(err).Msg("google fetch failed")
		}
	}

	all := reviews.All()
	log.Info().Int("count", len(all)).Msg("fetched and normalized")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		log.Fatal().Err(err).Msg("encode failed")
	}
}
