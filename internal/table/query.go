package table

import "net/url"

// ApplyQuery sets each filterable column's selection from the repeated
// parameter named after it (?cuisines=Thai&cuisines=Italian) and the
// ordering from "sort". Other parameters are ignored.
func (t *Table) ApplyQuery(query url.Values) {
	for _, col := range t.columns {
		if col.Filterable {
			t.SetFilter(col.ID, nonEmpty(query[string(col.ID)]))
		}
	}
	t.SetSort(ParseSort(query.Get("sort")))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
