package table

import (
	"html/template"
	"sort"
	"strings"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

// Sort orders the visible rows by a sortable column.
// The zero value keeps dataset order.
type Sort struct {
	Column ColumnID
	Desc   bool
}

// ParseSort accepts "name" or "-name" style values.
func ParseSort(s string) Sort {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return Sort{Column: ColumnID(strings.TrimPrefix(s, "-")), Desc: true}
	}
	return Sort{Column: ColumnID(s)}
}

func (s Sort) String() string {
	if s.Column == "" {
		return ""
	}
	if s.Desc {
		return "-" + string(s.Column)
	}
	return string(s.Column)
}

// Table holds one view's dataset, facets and filter selection.
// It is not safe for concurrent use; each request builds its own.
type Table struct {
	columns []Column
	rows    []restaurant.Restaurant
	facets  restaurant.Facets
	filters Filters
	sort    Sort

	memoKey string
	memo    []restaurant.Restaurant
	memoOK  bool
}

func New(rows []restaurant.Restaurant, facets restaurant.Facets, columns []Column) *Table {
	return &Table{
		columns: columns,
		rows:    append([]restaurant.Restaurant(nil), rows...),
		facets:  facets,
		filters: make(Filters),
	}
}

func (t *Table) Columns() []Column { return t.columns }

func (t *Table) Column(id ColumnID) (Column, bool) {
	for _, c := range t.columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Len is the size of the full dataset.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Facets() restaurant.Facets { return t.facets }

// SetFilter replaces the selection for a filterable column. An empty
// selection clears it. Returns false if the column cannot be filtered.
func (t *Table) SetFilter(id ColumnID, values []string) bool {
	col, ok := t.Column(id)
	if !ok || !col.Filterable {
		return false
	}

	values = dedupe(values)
	if len(values) == 0 {
		delete(t.filters, id)
		return true
	}
	t.filters[id] = values
	return true
}

func (t *Table) Filters() Filters { return t.filters.Clone() }

// SetSort returns false (and leaves ordering unchanged) for columns that
// are unknown or not sortable.
func (t *Table) SetSort(s Sort) bool {
	if s.Column == "" {
		t.sort = Sort{}
		return true
	}
	col, ok := t.Column(s.Column)
	if !ok || !col.Sortable() {
		return false
	}
	t.sort = s
	return true
}

func (t *Table) Sort() Sort { return t.sort }

// Visible returns the rows passing the current filters. The result is
// recomputed only when the filter selection or ordering changes.
func (t *Table) Visible() []restaurant.Restaurant {
	key := t.filters.Key() + "|" + t.sort.String()
	if t.memoOK && t.memoKey == key {
		return t.memo
	}

	rows := Visible(t.rows, t.columns, t.filters)
	if col, ok := t.Column(t.sort.Column); ok && col.Sortable() {
		desc := t.sort.Desc
		sort.SliceStable(rows, func(i, j int) bool {
			if desc {
				return col.Less(rows[j], rows[i])
			}
			return col.Less(rows[i], rows[j])
		})
	}

	t.memoKey = key
	t.memo = rows
	t.memoOK = true
	return rows
}

// --------------------------------------------------
// View models
// --------------------------------------------------

type Option struct {
	Value    string
	Selected bool
}

type Header struct {
	ID         ColumnID
	Label      string
	Filterable bool
	Options    []Option

	Sortable bool
	// SortDir is "asc", "desc" or empty when the column is not the sort key.
	SortDir string
}

type Cell struct {
	Column ColumnID
	HTML   template.HTML
}

type Row struct {
	ID    string
	Cells []Cell
}

// Headers lists the header cells. Filter options always come from the
// global facets, never from the currently visible rows.
func (t *Table) Headers() []Header {
	headers := make([]Header, 0, len(t.columns))
	for _, col := range t.columns {
		h := Header{
			ID:         col.ID,
			Label:      col.Header,
			Filterable: col.Filterable,
			Sortable:   col.Sortable(),
		}
		if t.sort.Column == col.ID && col.Sortable() {
			h.SortDir = "asc"
			if t.sort.Desc {
				h.SortDir = "desc"
			}
		}
		if col.Filterable && col.Options != nil {
			selected := make(map[string]bool)
			for _, v := range t.filters[col.ID] {
				selected[v] = true
			}
			for _, v := range col.Options(t.facets) {
				h.Options = append(h.Options, Option{Value: v, Selected: selected[v]})
			}
		}
		headers = append(headers, h)
	}
	return headers
}

func (t *Table) Rows() []Row {
	visible := t.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		row := Row{ID: r.ID, Cells: make([]Cell, 0, len(t.columns))}
		for _, col := range t.columns {
			var html template.HTML
			if col.Render != nil {
				html = col.Render(r)
			}
			row.Cells = append(row.Cells, Cell{Column: col.ID, HTML: html})
		}
		rows = append(rows, row)
	}
	return rows
}
