package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultDataURL is the published 2023 Houston Restaurant Week dataset.
const DefaultDataURL = "https://raw.githubusercontent.com/k-weng/houston-restaurant-week-2023/main/data/restaurants.json"

// FetchError reports a failure to load the dataset, either on the wire
// or while decoding it.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch restaurants from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err (or anything it wraps) is a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// Decode parses the JSON array of restaurant records.
func Decode(raw []byte) ([]Restaurant, error) {
	var rows []Restaurant
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse restaurants: %w", err)
	}
	if rows == nil {
		return nil, errors.New("parse restaurants: document is null")
	}
	return rows, nil
}

// --------------------------------------------------
// HTTP
// --------------------------------------------------

type HTTPLoader struct {
	url    string
	client *http.Client
}

func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	if url == "" {
		url = DefaultDataURL
	}
	return &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchRestaurants performs one GET against the configured URL.
func (l *HTTPLoader) FetchRestaurants(ctx context.Context) ([]Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &FetchError{Source: l.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Source: l.url,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: l.url, Err: err}
	}

	rows, err := Decode(raw)
	if err != nil {
		return nil, &FetchError{Source: l.url, Err: err}
	}
	return rows, nil
}

// --------------------------------------------------
// Local file
// --------------------------------------------------

type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) FetchRestaurants(ctx context.Context) ([]Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: l.path, Err: err}
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &FetchError{Source: l.path, Err: err}
	}

	rows, err := Decode(raw)
	if err != nil {
		return nil, &FetchError{Source: l.path, Err: err}
	}
	return rows, nil
}
