package restaurant

import "sort"

// ExtractFacets collects the distinct cuisines and neighborhoods across rows,
// sorted ascending. Empty input yields two empty lists.
func ExtractFacets(rows []Restaurant) Facets {
	return Facets{
		Cuisines:      distinctSorted(rows, func(r Restaurant) []string { return r.Cuisines }),
		Neighborhoods: distinctSorted(rows, func(r Restaurant) []string { return r.Neighborhoods }),
	}
}

func distinctSorted(rows []Restaurant, field func(Restaurant) []string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, r := range rows {
		for _, v := range field(r) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}

	sort.Strings(values)
	return values
}

// FindByID returns the restaurant with the given id, if any.
func FindByID(rows []Restaurant, id string) (*Restaurant, bool) {
	for i := range rows {
		if rows[i].ID == id {
			r := rows[i]
			return &r, true
		}
	}
	return nil, false
}
