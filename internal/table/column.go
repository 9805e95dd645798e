package table

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/k-weng/houston-restaurant-week-2023/internal/menu"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

type ColumnID string

const (
	ColumnName          ColumnID = "name"
	ColumnCuisines      ColumnID = "cuisines"
	ColumnNeighborhoods ColumnID = "neighborhoods"
	ColumnMeals         ColumnID = "meals"
	ColumnURL           ColumnID = "url"
	ColumnDirections    ColumnID = "directions"
)

// Column describes how one table column reads, filters and renders a row.
//
// Values is only consulted for filterable columns and must return the
// multi-valued field the filter is matched against. Options supplies the
// filter control's choices from the global facets.
type Column struct {
	ID         ColumnID
	Header     string
	Filterable bool

	Values  func(restaurant.Restaurant) []string
	Options func(restaurant.Facets) []string
	Render  func(restaurant.Restaurant) template.HTML
	Text    func(restaurant.Restaurant) string

	// Less is non-nil for sortable columns.
	Less func(a, b restaurant.Restaurant) bool
}

func (c Column) Sortable() bool { return c.Less != nil }

// Links builds the outbound links emitted by the table.
type Links struct {
	DetailPrefix string
	MapBaseURL   string
}

func DefaultLinks() Links {
	return Links{
		DetailPrefix: "/restaurants/",
		MapBaseURL:   "https://google.com",
	}
}

func (l Links) Detail(id string) string {
	return strings.TrimSuffix(l.DetailPrefix, "/") + "/" + url.PathEscape(id)
}

// Directions returns a map-service link routing from the viewer's location
// to the restaurant.
func (l Links) Directions(loc restaurant.Location) string {
	return fmt.Sprintf(
		"%s/maps?daddr=%s,%s&saddr=My+Location",
		strings.TrimSuffix(l.MapBaseURL, "/"),
		formatCoordinate(loc.Latitude()),
		formatCoordinate(loc.Longitude()),
	)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DefaultColumns returns the six restaurant columns in display order.
func DefaultColumns(links Links) []Column {
	return []Column{
		{
			ID:     ColumnName,
			Header: "Restaurant",
			Render: func(r restaurant.Restaurant) template.HTML {
				return newTabLink(links.Detail(r.ID), r.Name, "noopener")
			},
			Text: func(r restaurant.Restaurant) string { return r.Name },
			Less: func(a, b restaurant.Restaurant) bool {
				return strings.ToLower(a.Name) < strings.ToLower(b.Name)
			},
		},
		{
			ID:         ColumnCuisines,
			Header:     "Cuisines",
			Filterable: true,
			Values:     func(r restaurant.Restaurant) []string { return r.Cuisines },
			Options:    func(f restaurant.Facets) []string { return f.Cuisines },
			Render:     func(r restaurant.Restaurant) template.HTML { return badges(r.Cuisines) },
			Text:       func(r restaurant.Restaurant) string { return strings.Join(r.Cuisines, ", ") },
		},
		{
			ID:         ColumnNeighborhoods,
			Header:     "Neighborhoods",
			Filterable: true,
			Values:     func(r restaurant.Restaurant) []string { return r.Neighborhoods },
			Options:    func(f restaurant.Facets) []string { return f.Neighborhoods },
			Render:     func(r restaurant.Restaurant) template.HTML { return badges(r.Neighborhoods) },
			Text:       func(r restaurant.Restaurant) string { return strings.Join(r.Neighborhoods, ", ") },
		},
		{
			ID:     ColumnMeals,
			Header: "Meals",
			Render: func(r restaurant.Restaurant) template.HTML {
				var b strings.Builder
				b.WriteString(`<div class="meals">`)
				for _, code := range menu.MealsOf(r).Codes() {
					b.WriteString(`<span class="meal">` + code + `</span>`)
				}
				b.WriteString(`</div>`)
				return template.HTML(b.String())
			},
			Text: func(r restaurant.Restaurant) string { return menu.MealsOf(r).String() },
		},
		{
			ID:     ColumnURL,
			Header: "Page",
			Render: func(r restaurant.Restaurant) template.HTML {
				return newTabLink(r.URL, "Page", "noopener noreferrer")
			},
			Text: func(r restaurant.Restaurant) string { return r.URL },
		},
		{
			ID:     ColumnDirections,
			Header: "Directions",
			Render: func(r restaurant.Restaurant) template.HTML {
				return newTabLink(links.Directions(r.Location), "Directions", "noopener noreferrer")
			},
			Text: func(r restaurant.Restaurant) string { return links.Directions(r.Location) },
		},
	}
}

func badges(values []string) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="badges">`)
	for _, v := range values {
		b.WriteString(`<span class="badge">`)
		b.WriteString(template.HTMLEscapeString(v))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func newTabLink(href, label, rel string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<a href="%s" target="_blank" rel="%s">%s</a>`,
		template.HTMLEscapeString(safeHref(href)),
		rel,
		template.HTMLEscapeString(label),
	))
}

// safeHref drops anything that is not a relative path or an http(s) URL.
func safeHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return href
	default:
		return "#"
	}
}
