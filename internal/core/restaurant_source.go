package core

import (
	"context"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

// RestaurantSource loads the full event dataset. Implementations return a
// *restaurant.FetchError when the document cannot be retrieved or parsed.
type RestaurantSource interface {
	FetchRestaurants(ctx context.Context) ([]restaurant.Restaurant, error)
}
