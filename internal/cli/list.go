package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/k-weng/houston-restaurant-week-2023/internal/core"
	"github.com/k-weng/houston-restaurant-week-2023/internal/menu"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
	"github.com/k-weng/houston-restaurant-week-2023/internal/table"
)

type listOptions struct {
	cuisines      []string
	neighborhoods []string
	sort          string
	output        string
	mapBaseURL    string
}

func newListCommand(source func() core.RestaurantSource) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally filtered by cuisine and neighborhood",
		Long: "List restaurants. Repeat --cuisine or --neighborhood to accept several values;\n" +
			"a restaurant matches when it has any accepted value in every filtered column.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := source().FetchRestaurants(cmd.Context())
			if err != nil {
				return err
			}

			links := table.DefaultLinks()
			links.MapBaseURL = opts.mapBaseURL
			tbl := table.New(rows, restaurant.ExtractFacets(rows), table.DefaultColumns(links))

			// same parameter names as the web page
			tbl.ApplyQuery(url.Values{
				string(table.ColumnCuisines):      opts.cuisines,
				string(table.ColumnNeighborhoods): opts.neighborhoods,
				"sort":                            {opts.sort},
			})
			if opts.sort != "" && tbl.Sort().String() != opts.sort {
				return fmt.Errorf("cannot sort by %q", opts.sort)
			}

			return writeList(cmd.OutOrStdout(), opts.output, tbl)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(
		&opts.cuisines,
		"cuisine",
		nil,
		"Accepted cuisine (repeatable)",
	)
	flags.StringArrayVar(
		&opts.neighborhoods,
		"neighborhood",
		nil,
		"Accepted neighborhood (repeatable)",
	)
	flags.StringVar(
		&opts.sort,
		"sort",
		"",
		"Sort column: name or -name",
	)
	flags.StringVarP(
		&opts.output,
		"output",
		"o",
		"table",
		"Output format: table | json | yaml",
	)
	flags.StringVar(
		&opts.mapBaseURL,
		"map-base-url",
		"https://google.com",
		"Base URL of the map service used for directions",
	)

	cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveDefault
	})

	return cmd
}

type listEntry struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Cuisines      []string   `json:"cuisines" yaml:"cuisines"`
	Neighborhoods []string   `json:"neighborhoods" yaml:"neighborhoods"`
	Meals         menu.Meals `json:"meals" yaml:"meals"`
	FromPrice     *float64   `json:"from_price,omitempty" yaml:"from_price,omitempty"`
	URL           string     `json:"url" yaml:"url"`
	Directions    string     `json:"directions" yaml:"directions"`
}

func writeList(w io.Writer, format string, tbl *table.Table) error {
	visible := tbl.Visible()

	switch format {
	case "json", "yaml":
		dirCol, _ := tbl.Column(table.ColumnDirections)
		entries := make([]listEntry, 0, len(visible))
		for _, r := range visible {
			e := listEntry{
				ID:            r.ID,
				Name:          r.Name,
				Cuisines:      r.Cuisines,
				Neighborhoods: r.Neighborhoods,
				Meals:         menu.MealsOf(r),
				URL:           r.URL,
				Directions:    dirCol.Text(r),
			}
			if p, ok := menu.LowestPrice(r); ok {
				e.FromPrice = &p
			}
			entries = append(entries, e)
		}
		return encode(w, format, entries)

	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		headers := make([]string, 0, len(tbl.Columns()))
		for _, col := range tbl.Columns() {
			if col.ID == table.ColumnURL || col.ID == table.ColumnDirections {
				continue
			}
			headers = append(headers, strings.ToUpper(col.Header))
		}
		fmt.Fprintln(tw, strings.Join(append(headers, "FROM"), "\t"))

		for _, r := range visible {
			cells := make([]string, 0, len(headers)+1)
			for _, col := range tbl.Columns() {
				if col.ID == table.ColumnURL || col.ID == table.ColumnDirections {
					continue
				}
				cells = append(cells, col.Text(r))
			}
			price := "-"
			if p, ok := menu.LowestPrice(r); ok {
				price = fmt.Sprintf("$%.0f", p)
			}
			fmt.Fprintln(tw, strings.Join(append(cells, price), "\t"))
		}
		fmt.Fprintf(tw, "\n%d of %d restaurants\n", len(visible), tbl.Len())
		return tw.Flush()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
