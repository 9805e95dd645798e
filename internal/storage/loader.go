package storage

import (
	"context"
	"fmt"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

type ObjectGetter interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectLoader serves the restaurant dataset from a bucket object.
type ObjectLoader struct {
	objects ObjectGetter
	source  string
	key     string
}

func NewObjectLoader(objects ObjectGetter, bucket, key string) *ObjectLoader {
	return &ObjectLoader{
		objects: objects,
		source:  fmt.Sprintf("r2://%s/%s", bucket, key),
		key:     key,
	}
}

func (l *ObjectLoader) FetchRestaurants(ctx context.Context) ([]restaurant.Restaurant, error) {
	raw, err := l.objects.Get(ctx, l.key)
	if err != nil {
		return nil, &restaurant.FetchError{Source: l.source, Err: err}
	}

	rows, err := restaurant.Decode(raw)
	if err != nil {
		return nil, &restaurant.FetchError{Source: l.source, Err: err}
	}
	return rows, nil
}
