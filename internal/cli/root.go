package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/k-weng/houston-restaurant-week-2023/internal/core"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

type sourceOptions struct {
	url     string
	file    string
	timeout time.Duration
}

// sourceFunc builds the data source from the parsed flags; tests swap it out.
type sourceFunc func(opts sourceOptions) core.RestaurantSource

func defaultSource(opts sourceOptions) core.RestaurantSource {
	if opts.file != "" {
		return restaurant.NewFileLoader(opts.file)
	}
	return restaurant.NewHTTPLoader(opts.url, opts.timeout)
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultSource)
}

func newRootCommand(newSource sourceFunc) *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:           "rwctl",
		Short:         "Browse Houston Restaurant Week participants from the terminal",
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(
		&opts.url,
		"url",
		restaurant.DefaultDataURL,
		"URL of the restaurants JSON document",
	)
	flags.StringVar(
		&opts.file,
		"file",
		"",
		"Read restaurants from a local JSON file instead of --url",
	)
	flags.DurationVar(
		&opts.timeout,
		"timeout",
		15*time.Second,
		"HTTP timeout for fetching the dataset",
	)

	source := func() core.RestaurantSource { return newSource(*opts) }

	cmd.AddCommand(
		newListCommand(source),
		newFacetsCommand(source),
	)
	return cmd
}
