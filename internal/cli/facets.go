package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/k-weng/houston-restaurant-week-2023/internal/core"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

func newFacetsCommand(source func() core.RestaurantSource) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Print every cuisine and neighborhood that can be filtered on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := source().FetchRestaurants(cmd.Context())
			if err != nil {
				return err
			}
			facets := restaurant.ExtractFacets(rows)

			if output == "table" || output == "" {
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, "CUISINES")
				for _, c := range facets.Cuisines {
					fmt.Fprintln(w, "  "+c)
				}
				fmt.Fprintln(w, "NEIGHBORHOODS")
				for _, n := range facets.Neighborhoods {
					fmt.Fprintln(w, "  "+n)
				}
				return nil
			}
			return encode(cmd.OutOrStdout(), output, facets)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table | json | yaml")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
