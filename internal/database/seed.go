package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// SampleProducts is the data inserted by Seed.
var SampleProducts = []models.CreateProductInput{
	{Name: "Laptop", Description: "High performance laptop", Price: 1200, Stock: 10},
	{Name: "Keyboard", Description: "Mechanical keyboard", Price: 75, Stock: 25},
	{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: 25, Stock: 50},
}

// Seed inserts SampleProducts through repo. Products that already exist are
// skipped, so running it twice is harmless. It returns the number inserted.
func Seed(ctx context.Context, repo repositories.CatalogRepository, logger *slog.Logger) (int, error) {
	inserted := 0
	for _, input := range SampleProducts {
		product, err := repo.Create(ctx, input)
		if errors.Is(err, repositories.ErrProductExists) {
			logger.DebugContext(ctx, "Seed product already present", slog.String("name", input.Name))
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("failed to seed product %s: %w", input.Name, err)
		}
		inserted++
		logger.InfoContext(ctx, "Seeded product",
			slog.Int("product_id", product.ID),
			slog.String("name", product.Name),
		)
	}
	return inserted, nil
}
