package table

import (
	"net/url"
	"strings"
	"testing"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

func newSampleTable() *Table {
	rows := sampleRows()
	return New(rows, restaurant.ExtractFacets(rows), DefaultColumns(DefaultLinks()))
}

func TestTable_FilterTransitions(t *testing.T) {
	tbl := newSampleTable()

	if got := ids(tbl.Visible()); !sameIDs(got, []string{"1", "2", "3"}) {
		t.Fatalf("unfiltered: expected all rows, got %v", got)
	}

	if !tbl.SetFilter(ColumnCuisines, []string{"Thai"}) {
		t.Fatal("cuisines must be filterable")
	}
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"2"}) {
		t.Errorf("filtered: expected [2], got %v", got)
	}

	tbl.SetFilter(ColumnCuisines, nil)
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"1", "2", "3"}) {
		t.Errorf("cleared: expected all rows, got %v", got)
	}
	if tbl.Filters().Active() {
		t.Errorf("expected no active filters after clearing")
	}
}

func TestTable_SetFilter_Replaces(t *testing.T) {
	tbl := newSampleTable()

	tbl.SetFilter(ColumnCuisines, []string{"Thai"})
	tbl.SetFilter(ColumnCuisines, []string{"Mexican"})

	if got := ids(tbl.Visible()); !sameIDs(got, []string{"3"}) {
		t.Errorf("expected [3], got %v", got)
	}
}

func TestTable_SetFilter_NotFilterable(t *testing.T) {
	tbl := newSampleTable()

	if tbl.SetFilter(ColumnName, []string{"Casa Tres"}) {
		t.Error("name must not be filterable")
	}
	if tbl.SetFilter("price", []string{"10"}) {
		t.Error("unknown column must not be filterable")
	}
	if tbl.Filters().Active() {
		t.Error("rejected filters must not be stored")
	}
}

func TestTable_OwnsDataset(t *testing.T) {
	rows := sampleRows()
	tbl := New(rows, restaurant.ExtractFacets(rows), DefaultColumns(DefaultLinks()))

	rows[0] = restaurant.Restaurant{ID: "changed"}

	if got := tbl.Visible()[0].ID; got != "1" {
		t.Errorf("table must keep its own copy, got first id %q", got)
	}
}

func TestTable_VisibleIsMemoized(t *testing.T) {
	calls := 0
	columns := []Column{
		{
			ID:         ColumnCuisines,
			Filterable: true,
			Values: func(r restaurant.Restaurant) []string {
				calls++
				return r.Cuisines
			},
		},
	}
	rows := sampleRows()
	tbl := New(rows, restaurant.ExtractFacets(rows), columns)

	tbl.SetFilter(ColumnCuisines, []string{"Italian"})
	tbl.Visible()
	first := calls
	if first == 0 {
		t.Fatal("expected predicate evaluation")
	}

	tbl.Visible()
	tbl.SetFilter(ColumnCuisines, []string{"Italian"})
	tbl.Visible()
	if calls != first {
		t.Errorf("expected cached result, predicate ran %d extra times", calls-first)
	}

	tbl.SetFilter(ColumnCuisines, []string{"Thai"})
	tbl.Visible()
	if calls == first {
		t.Error("expected recomputation after filter change")
	}
}

func TestTable_Sort(t *testing.T) {
	tbl := newSampleTable()

	if !tbl.SetSort(ParseSort("name")) {
		t.Fatal("name must be sortable")
	}
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"2", "3", "1"}) {
		t.Errorf("ascending: got %v", got)
	}

	tbl.SetSort(ParseSort("-name"))
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"1", "3", "2"}) {
		t.Errorf("descending: got %v", got)
	}

	if tbl.SetSort(ParseSort("cuisines")) {
		t.Error("cuisines must not be sortable")
	}
	if tbl.Sort().String() != "-name" {
		t.Errorf("rejected sort must keep previous ordering, got %q", tbl.Sort())
	}

	tbl.SetSort(Sort{})
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"1", "2", "3"}) {
		t.Errorf("reset: got %v", got)
	}
}

func TestTable_Headers(t *testing.T) {
	tbl := newSampleTable()
	tbl.SetFilter(ColumnCuisines, []string{"Thai"})
	tbl.SetFilter(ColumnNeighborhoods, []string{"Heights"})

	headers := tbl.Headers()
	if len(headers) != 6 {
		t.Fatalf("expected 6 headers, got %d", len(headers))
	}

	want := []ColumnID{ColumnName, ColumnCuisines, ColumnNeighborhoods, ColumnMeals, ColumnURL, ColumnDirections}
	for i, h := range headers {
		if h.ID != want[i] {
			t.Errorf("header %d: expected %s, got %s", i, want[i], h.ID)
		}
	}

	// no row is visible, yet every global option is still offered
	if len(tbl.Visible()) != 0 {
		t.Fatalf("expected no visible rows")
	}
	cuisines := headers[1]
	if !cuisines.Filterable || len(cuisines.Options) != 3 {
		t.Fatalf("expected 3 cuisine options, got %+v", cuisines.Options)
	}
	for _, o := range cuisines.Options {
		if o.Selected != (o.Value == "Thai") {
			t.Errorf("option %s selected=%v", o.Value, o.Selected)
		}
	}

	if headers[0].Filterable || headers[0].Options != nil {
		t.Errorf("name header must not carry a filter control")
	}
}

func TestTable_Rows(t *testing.T) {
	tbl := newSampleTable()
	tbl.SetFilter(ColumnCuisines, []string{"Mexican"})

	rows := tbl.Rows()
	if len(rows) != 1 || rows[0].ID != "3" {
		t.Fatalf("expected row 3, got %+v", rows)
	}
	if len(rows[0].Cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(rows[0].Cells))
	}

	meals := string(rows[0].Cells[3].HTML)
	if !strings.Contains(meals, ">B<") || strings.Contains(meals, ">L<") || strings.Contains(meals, ">D<") {
		t.Errorf("expected brunch only, got %s", meals)
	}
}

func TestTable_ApplyQuery(t *testing.T) {
	tbl := newSampleTable()

	tbl.ApplyQuery(url.Values{
		"cuisines":      {"Italian", "", "Mexican"},
		"neighborhoods": {"Downtown"},
		"name":          {"Casa Tres"},
		"sort":          {"-name"},
	})
	if got := ids(tbl.Visible()); !sameIDs(got, []string{"1", "3"}) {
		t.Errorf("expected [1 3], got %v", got)
	}

	tbl.ApplyQuery(url.Values{})
	if tbl.Filters().Active() || tbl.Sort().Column != "" {
		t.Errorf("empty query must reset filters and ordering")
	}
}
