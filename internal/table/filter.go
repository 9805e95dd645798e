package table

import (
	"sort"
	"strings"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

// Filters maps a column to the set of values it accepts. An empty or missing
// entry places no restriction on that column.
type Filters map[ColumnID][]string

// Active reports whether any column carries a non-empty selection.
func (f Filters) Active() bool {
	for _, values := range f {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for id, values := range f {
		out[id] = append([]string(nil), values...)
	}
	return out
}

// Key is a canonical form of the selection: two Filters with the same key
// select the same rows. Empty selections are left out.
func (f Filters) Key() string {
	ids := make([]string, 0, len(f))
	for id, values := range f {
		if len(values) > 0 {
			ids = append(ids, string(id))
		}
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		values := dedupe(f[ColumnID(id)])
		sort.Strings(values)

		b.WriteString(id)
		b.WriteByte('=')
		b.WriteString(strings.Join(values, "\x1f"))
		b.WriteByte('\x1e')
	}
	return b.String()
}

// Matches reports whether r passes every active filter: OR within a
// column's selection, AND across columns. Selections on columns that are
// unknown or not filterable are ignored.
func Matches(r restaurant.Restaurant, columns []Column, filters Filters) bool {
	for _, col := range columns {
		if !col.Filterable || col.Values == nil {
			continue
		}
		accepted := filters[col.ID]
		if len(accepted) == 0 {
			continue
		}
		if !intersects(col.Values(r), accepted) {
			return false
		}
	}
	return true
}

// Visible returns the rows that pass filters, in dataset order.
func Visible(rows []restaurant.Restaurant, columns []Column, filters Filters) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(rows))
	for _, r := range rows {
		if Matches(r, columns, filters) {
			out = append(out, r)
		}
	}
	return out
}

func intersects(values, accepted []string) bool {
	for _, a := range accepted {
		for _, v := range values {
			if v == a {
				return true
			}
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
