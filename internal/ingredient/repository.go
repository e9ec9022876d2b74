package ingredient

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	ingredientdb "foodgram/internal/ingredient/db"
)

// Repository is a database-backed repository for the ingredient reference table.
type Repository struct {
	queries *ingredientdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: ingredientdb.New(d),
		db:      d,
	}
}

// Get retrieves an ingredient by ID. Returns nil when not found.
func (r *Repository) Get(ctx context.Context, id int64) (*Ingredient, error) {
	dbIng, err := r.queries.GetIngredientByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingredient by ID: %w", err)
	}
	return &Ingredient{ID: dbIng.ID, Name: dbIng.Name, MeasurementUnit: dbIng.MeasurementUnit}, nil
}

// GetOrCreate returns the ingredient with the given name and unit, inserting
// it first when the reference table does not have it yet.
func (r *Repository) GetOrCreate(ctx context.Context, name, unit string) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" || unit == "" {
		return nil, fmt.Errorf("ingredient name and measurement unit must be set")
	}

	err := r.queries.InsertIngredient(ctx, ingredientdb.InsertIngredientParams{
		Name:            name,
		MeasurementUnit: unit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert ingredient: %w", err)
	}

	dbIng, err := r.queries.GetIngredientByNameUnit(ctx, ingredientdb.GetIngredientByNameUnitParams{
		Name:            name,
		MeasurementUnit: unit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient %q (%s): %w", name, unit, err)
	}
	return &Ingredient{ID: dbIng.ID, Name: dbIng.Name, MeasurementUnit: dbIng.MeasurementUnit}, nil
}

// Search returns ingredients whose name starts with the given prefix.
func (r *Repository) Search(ctx context.Context, prefix string, limit int) ([]Ingredient, error) {
	if limit <= 0 {
		limit = 20
	}
	dbIngs, err := r.queries.SearchIngredientsByName(ctx, ingredientdb.SearchIngredientsByNameParams{
		Name:  prefix + "%",
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}

	var ingredients []Ingredient
	for _, dbIng := range dbIngs {
		ingredients = append(ingredients, Ingredient{
			ID:              dbIng.ID,
			Name:            dbIng.Name,
			MeasurementUnit: dbIng.MeasurementUnit,
		})
	}
	return ingredients, nil
}

// Count returns the number of ingredients in the reference table.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountIngredients(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}
	return int(count), nil
}
