package donation

import "testing"

func TestServingEstimateFromQuantity(t *testing.T) {
	cases := []struct {
		quantity string
		want     int
	}{
		{"10 kg", 80},
		{"2.5 kg", 20},
		{"1 kilogram", 8},
		{"500 g", 4},
		{"500 gm", 4},
		{"250 grams", 2},
		{"2 litres", 10},
		{"3 liter", 15},
		{"5 l", 25},
		{"500 ml", 3},
		{"750 millilitres", 4},
		{"750 milliliters", 4},
		{"200 millilitre", 1},
		{"3 trays", 30},
		{"2 boxes", 20},
		{"4 packets", 40},
		{"1 bag", 10},
		{"20 plates", 20},
		{"15 meals", 15},
		{"8 servings", 8},
		{"6 portions", 6},
		{"7 pieces", 28},
		{"12", 48},
		{"some rice", 0},
		{"", 0},
		{"0 kg", 0},
	}
	for _, c := range cases {
		if got := ServingEstimateFromQuantity(c.quantity); got != c.want {
			t.Errorf("ServingEstimateFromQuantity(%q) = %d, want %d", c.quantity, got, c.want)
		}
	}
}

// Short unit tokens must match as whole words: "20 plates" is twenty plates,
// not twenty litres.
func TestServingEstimateShortUnitsAreWordBounded(t *testing.T) {
	if got := ServingEstimateFromQuantity("20 plates"); got != 20 {
		t.Fatalf("plates misread as litres: got %d, want 20", got)
	}
	if got := ServingEstimateFromQuantity("3 glasses"); got != 12 {
		t.Fatalf("glasses misread as grams: got %d, want 12", got)
	}
}

// Spelled-out millilitres contain "litre" as a substring; they must still
// convert at the millilitre rate.
func TestServingEstimateSpelledOutMillilitres(t *testing.T) {
	for _, q := range []string{"750 millilitres", "750 milliliters"} {
		if got := ServingEstimateFromQuantity(q); got != 4 {
			t.Fatalf("ServingEstimateFromQuantity(%q) = %d, want 4", q, got)
		}
	}
}

func TestEstimateServings(t *testing.T) {
	items := []FoodItem{
		{Name: "Rice", Category: CategoryCooked, Quantity: "5 kg"},
		{Name: "Curry", Category: CategoryCooked, Quantity: "2 trays"},
	}
	if got := EstimateServings(items); got != 60 {
		t.Errorf("EstimateServings = %d, want 60", got)
	}
}

func TestEstimateServingsFallback(t *testing.T) {
	items := []FoodItem{
		{Name: "Snacks", Category: CategoryPackaged, Quantity: "assorted"},
		{Name: "Sweets", Category: CategoryBaked, Quantity: "mixed"},
	}
	if got := EstimateServings(items); got != 10 {
		t.Errorf("unparseable quantities should fall back to 5 per item, got %d", got)
	}
	if got := EstimateServings(nil); got != 0 {
		t.Errorf("empty item list should estimate 0, got %d", got)
	}
}

func TestNormalizeEstimatedServings(t *testing.T) {
	items := []FoodItem{{Name: "Rice", Category: CategoryCooked, Quantity: "5 kg"}}
	if got := NormalizeEstimatedServings(72.4, items); got != 72 {
		t.Errorf("explicit servings should win: got %d, want 72", got)
	}
	if got := NormalizeEstimatedServings(0, items); got != 40 {
		t.Errorf("zero provided should fall back to heuristic: got %d, want 40", got)
	}
	if got := NormalizeEstimatedServings(-3, items); got != 40 {
		t.Errorf("negative provided should fall back to heuristic: got %d, want 40", got)
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	items := []FoodItem{
		{Name: "Rice", Category: CategoryCooked, Quantity: "5 kg"},
		{Name: "Juice", Category: CategoryBeverages, Quantity: "2 litres"},
	}
	first := EstimateServings(items)
	for i := 0; i < 10; i++ {
		if got := EstimateServings(items); got != first {
			t.Fatalf("estimate changed between runs: %d vs %d", got, first)
		}
	}
}
