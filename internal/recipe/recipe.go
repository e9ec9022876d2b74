package recipe

import (
	"time"

	"foodgram/internal/quantity"
	"foodgram/internal/tag"
)

// Ingredient is one (ingredient, amount, unit) triple of a recipe.
type Ingredient struct {
	IngredientID    int64             `json:"id"`
	Name            string            `json:"name"`
	MeasurementUnit string            `json:"measurement_unit"`
	Amount          quantity.Quantity `json:"amount"`
}

// Recipe is a published recipe with its ordered ingredient triples.
// The struct is a plain value: nothing here is attached to the database, so
// the export pipeline can operate on a stable snapshot.
type Recipe struct {
	ID          int64        `json:"id"`
	AuthorID    int64        `json:"author_id"`
	Name        string       `json:"name"`
	Text        string       `json:"text"`
	CookingTime int          `json:"cooking_time"`
	PubDate     time.Time    `json:"pub_date"`
	Tags        []tag.Tag    `json:"tags,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}
