// Package shopping turns a selection of recipes into a shopping list
// document: it aggregates ingredient triples across recipes and renders the
// result in a downloadable format.
package shopping

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"foodgram/internal/quantity"
	"foodgram/internal/recipe"
)

// Line is one aggregated entry of a shopping list.
type Line struct {
	IngredientID    int64             `json:"id"`
	Name            string            `json:"name"`
	MeasurementUnit string            `json:"measurement_unit"`
	Amount          quantity.Quantity `json:"amount"`
}

type lineKey struct {
	ingredientID    int64
	measurementUnit string
}

// Aggregate merges the ingredient triples of the given recipes into one list.
// Entries are keyed by ingredient and measurement unit; amounts of matching
// entries are summed, including repeats within a single recipe. The same
// ingredient name under two different units stays as two separate lines.
// The result is sorted by name using Russian collation, then by unit, so the
// same selection always yields the same list.
func Aggregate(recipes []recipe.Recipe) []Line {
	totals := make(map[lineKey]int)
	var lines []Line
	for _, rec := range recipes {
		for _, ing := range rec.Ingredients {
			key := lineKey{ing.IngredientID, ing.MeasurementUnit}
			if i, ok := totals[key]; ok {
				lines[i].Amount = lines[i].Amount.Add(ing.Amount)
				continue
			}
			totals[key] = len(lines)
			lines = append(lines, Line{
				IngredientID:    ing.IngredientID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          ing.Amount,
			})
		}
	}

	c := collate.New(language.Russian)
	sort.Slice(lines, func(i, j int) bool {
		if cmp := c.CompareString(lines[i].Name, lines[j].Name); cmp != 0 {
			return cmp < 0
		}
		return lines[i].MeasurementUnit < lines[j].MeasurementUnit
	})
	return lines
}
