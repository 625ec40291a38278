// Command seed loads a small demo catalog into the configured database.
// Intended for local development and manual testing of the UI.
package main

import (
	"context"

	"productstore/internal/config"
	"productstore/internal/infra"
	"productstore/internal/model"
	"productstore/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	products := []model.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.NewFromFloat(12.50), Available: true, Category: model.CategoryCloths},
		{Name: "Hammer", Description: "16oz claw hammer", Price: decimal.NewFromFloat(24.99), Available: true, Category: model.CategoryTools},
		{Name: "Apple Crate", Description: "A dozen apples", Price: decimal.NewFromFloat(8.00), Available: false, Category: model.CategoryFood},
		{Name: "Dish Rack", Description: "Chrome, two tier", Price: decimal.NewFromFloat(19.95), Available: true, Category: model.CategoryHousewares},
		{Name: "Wiper Blades", Description: "22 inch pair", Price: decimal.NewFromFloat(31.40), Available: true, Category: model.CategoryAutomotive},
	}

	repo := repository.NewProductRepository(db)
	ctx := context.Background()
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			log.Error().Err(err).Str("name", products[i].Name).Msg("seed failed")
			continue
		}
		log.Info().Str("product", products[i].String()).Msg("seeded")
	}
}
