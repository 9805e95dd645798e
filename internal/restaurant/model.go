package restaurant

// Restaurant is one participating restaurant in the event dataset.
type Restaurant struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	URL           string   `json:"url" yaml:"url"`
	Cuisines      []string `json:"cuisines" yaml:"cuisines"`
	Neighborhoods []string `json:"neighborhoods" yaml:"neighborhoods"`
	Location      Location `json:"location" yaml:"location"`

	Lunch  *Menu `json:"lunch" yaml:"lunch,omitempty"`
	Brunch *Menu `json:"brunch" yaml:"brunch,omitempty"`
	Dinner *Menu `json:"dinner" yaml:"dinner,omitempty"`
}

// Location holds the street address and a [latitude, longitude] pair.
type Location struct {
	Address     string     `json:"address" yaml:"address"`
	Coordinates [2]float64 `json:"coordinates" yaml:"coordinates"`
}

func (l Location) Latitude() float64  { return l.Coordinates[0] }
func (l Location) Longitude() float64 { return l.Coordinates[1] }

// Menu is a fixed-price event menu (lunch, brunch or dinner)
type Menu struct {
	Price   float64  `json:"price" yaml:"price"`
	Note    *string  `json:"note" yaml:"note,omitempty"`
	Courses []Course `json:"courses" yaml:"courses"`
}

type Course struct {
	Name    string   `json:"name" yaml:"name"`
	Choices []Choice `json:"choices" yaml:"choices"`
}

type Choice struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Facets are the global option lists for the filter controls.
type Facets struct {
	Cuisines      []string `json:"cuisines" yaml:"cuisines"`
	Neighborhoods []string `json:"neighborhoods" yaml:"neighborhoods"`
}
