package core

import (
	"context"
	"log"

	"github.com/k-weng/houston-restaurant-week-2023/internal/config"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
	"github.com/k-weng/houston-restaurant-week-2023/internal/storage"
)

// NewRestaurantSource picks the data source from configuration: a local
// file, then a bucket object, then the remote URL.
func NewRestaurantSource(ctx context.Context, cfg *config.Config) (RestaurantSource, error) {
	switch {
	case cfg.DataFile != "":
		log.Printf("[SOURCE] file %s", cfg.DataFile)
		return restaurant.NewFileLoader(cfg.DataFile), nil

	case cfg.DataObjectKey != "":
		client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		log.Printf("[SOURCE] bucket %s key %s", cfg.R2.Bucket, cfg.DataObjectKey)
		return storage.NewObjectLoader(client, cfg.R2.Bucket, cfg.DataObjectKey), nil

	default:
		log.Printf("[SOURCE] url %s", cfg.DataURL)
		return restaurant.NewHTTPLoader(cfg.DataURL, cfg.FetchTimeout), nil
	}
}
