// README: Serving estimator converts free-text quantities into meal-serving counts.
package donation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var quantityNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ServingEstimateFromQuantity extracts the first numeric token from a
// free-text quantity ("5 kg", "3 trays") and applies a unit conversion
// factor. Unparseable text contributes 0, never an error.
func ServingEstimateFromQuantity(quantity string) int {
	text := strings.ToLower(strings.TrimSpace(quantity))
	match := quantityNumberRe.FindString(text)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || value <= 0 {
		return 0
	}

	tokens := unitTokens(text)

	switch {
	case strings.Contains(text, "kg") || strings.Contains(text, "kilogram"):
		return round(value * 8)
	case strings.Contains(text, "gram") || tokens["g"] || tokens["gm"]:
		return round(value / 1000 * 8)
	// "millilitre" contains "litre", so the smaller unit is checked first.
	case strings.Contains(text, "millilitre") || strings.Contains(text, "milliliter") || tokens["ml"]:
		return round(value / 1000 * 5)
	case strings.Contains(text, "litre") || strings.Contains(text, "liter") || tokens["l"]:
		return round(value * 5)
	case containsAny(text, "tray", "box", "pack", "packet", "bag"):
		return round(value * 10)
	case containsAny(text, "plate", "meal", "serving", "portion"):
		return round(value)
	}
	return round(value * 4)
}

// EstimateServings sums per-item estimates; when nothing is parseable it
// falls back to a flat 5 servings per item.
func EstimateServings(items []FoodItem) int {
	total := 0
	for _, item := range items {
		total += ServingEstimateFromQuantity(item.Quantity)
	}
	if total > 0 {
		return total
	}
	if n := len(items) * 5; n > 0 {
		return n
	}
	return 0
}

// NormalizeEstimatedServings prefers an explicit positive caller-supplied
// value (rounded) over the heuristic.
func NormalizeEstimatedServings(provided float64, items []FoodItem) int {
	if provided > 0 && !math.IsInf(provided, 0) && !math.IsNaN(provided) {
		return round(provided)
	}
	return EstimateServings(items)
}

// unitTokens splits the text into unit words, dropping digits and
// punctuation, so short units ("g", "l", "ml") match as whole tokens
// instead of shadowing longer keywords.
func unitTokens(text string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return ' '
	}, text)
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		tokens[tok] = true
	}
	return tokens
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func round(v float64) int {
	return int(math.Round(v))
}
