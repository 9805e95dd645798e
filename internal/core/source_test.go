package core

import (
	"context"
	"testing"
	"time"

	"github.com/k-weng/houston-restaurant-week-2023/internal/config"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
	"github.com/k-weng/houston-restaurant-week-2023/internal/storage"
)

func TestNewRestaurantSource(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "file wins",
			cfg:  config.Config{DataFile: "restaurants.json", DataObjectKey: "x", DataURL: "https://example.com"},
			want: "file",
		},
		{
			name: "bucket",
			cfg: config.Config{
				DataObjectKey: "restaurants.json",
				R2:            storage.R2Config{Endpoint: "https://acct.r2.cloudflarestorage.com", Bucket: "hrw"},
			},
			want: "bucket",
		},
		{
			name: "url",
			cfg:  config.Config{DataURL: "https://example.com/restaurants.json", FetchTimeout: time.Second},
			want: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewRestaurantSource(context.Background(), &tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got string
			switch src.(type) {
			case *restaurant.FileLoader:
				got = "file"
			case *storage.ObjectLoader:
				got = "bucket"
			case *restaurant.HTTPLoader:
				got = "url"
			}
			if got != tt.want {
				t.Errorf("expected %s source, got %T", tt.want, src)
			}
		})
	}
}
