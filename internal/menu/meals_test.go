package menu

import (
	"reflect"
	"testing"

	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
)

func TestMealsOf_Codes(t *testing.T) {
	tests := []struct {
		name  string
		r     restaurant.Restaurant
		codes []string
	}{
		{
			name:  "brunch only",
			r:     restaurant.Restaurant{Brunch: &restaurant.Menu{Price: 35}},
			codes: []string{"B"},
		},
		{
			name: "all meals",
			r: restaurant.Restaurant{
				Lunch:  &restaurant.Menu{Price: 25},
				Brunch: &restaurant.Menu{Price: 35},
				Dinner: &restaurant.Menu{Price: 55},
			},
			codes: []string{"L", "B", "D"},
		},
		{
			name:  "dinner and lunch keep fixed order",
			r:     restaurant.Restaurant{Dinner: &restaurant.Menu{}, Lunch: &restaurant.Menu{}},
			codes: []string{"L", "D"},
		},
		{
			name:  "no menus",
			r:     restaurant.Restaurant{},
			codes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MealsOf(tt.r).Codes()
			if !reflect.DeepEqual(got, tt.codes) {
				t.Errorf("expected %v, got %v", tt.codes, got)
			}
		})
	}
}

func TestMeals_String(t *testing.T) {
	m := Meals{Lunch: true, Dinner: true}
	if m.String() != "LD" {
		t.Errorf("expected LD, got %q", m.String())
	}
}

func TestLowestPrice(t *testing.T) {
	r := restaurant.Restaurant{
		Lunch:  &restaurant.Menu{Price: 25},
		Dinner: &restaurant.Menu{Price: 55},
	}
	price, ok := LowestPrice(r)
	if !ok || price != 25 {
		t.Errorf("expected 25, got %v (ok=%v)", price, ok)
	}

	if _, ok := LowestPrice(restaurant.Restaurant{}); ok {
		t.Error("expected no price for restaurant without menus")
	}
}
