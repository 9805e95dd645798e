package menu

import "github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"

// Meals records which event menus a restaurant offers.
type Meals struct {
	Lunch  bool `json:"lunch" yaml:"lunch"`
	Brunch bool `json:"brunch" yaml:"brunch"`
	Dinner bool `json:"dinner" yaml:"dinner"`
}

func MealsOf(r restaurant.Restaurant) Meals {
	return Meals{
		Lunch:  r.Lunch != nil,
		Brunch: r.Brunch != nil,
		Dinner: r.Dinner != nil,
	}
}

// Codes returns L, B and D for the offered meals, always in that order.
func (m Meals) Codes() []string {
	codes := make([]string, 0, 3)
	if m.Lunch {
		codes = append(codes, "L")
	}
	if m.Brunch {
		codes = append(codes, "B")
	}
	if m.Dinner {
		codes = append(codes, "D")
	}
	return codes
}

func (m Meals) String() string {
	s := ""
	for _, c := range m.Codes() {
		s += c
	}
	return s
}

// LowestPrice returns the cheapest menu price offered, or false when the
// restaurant has no event menu at all.
func LowestPrice(r restaurant.Restaurant) (float64, bool) {
	var (
		lowest float64
		found  bool
	)
	for _, m := range []*restaurant.Menu{r.Lunch, r.Brunch, r.Dinner} {
		if m == nil {
			continue
		}
		if !found || m.Price < lowest {
			lowest = m.Price
			found = true
		}
	}
	return lowest, found
}
