// Package cart persists each user's shopping cart, the set of recipes a
// shopping list export draws from.
package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	cartdb "foodgram/internal/cart/db"
)

// Repository is a database-backed repository for shopping carts.
type Repository struct {
	queries *cartdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: cartdb.New(d),
		db:      d,
	}
}

// Add puts a recipe into the user's cart. Adding a recipe that is already in
// the cart is an error from the primary key constraint.
func (r *Repository) Add(ctx context.Context, userID, recipeID int64) error {
	err := r.queries.InsertCartItem(ctx, cartdb.InsertCartItemParams{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

// Remove takes a recipe out of the user's cart. Removing a recipe that is not
// in the cart is a no-op.
func (r *Repository) Remove(ctx context.Context, userID, recipeID int64) error {
	err := r.queries.DeleteCartItem(ctx, cartdb.DeleteCartItemParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Contains reports whether the recipe is in the user's cart.
func (r *Repository) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	count, err := r.queries.CountCartItem(ctx, cartdb.CountCartItemParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to count cart item: %w", err)
	}
	return count > 0, nil
}

// RecipeIDs returns the IDs of the recipes in the user's cart in ascending
// order. An empty cart yields an empty slice, not an error.
func (r *Repository) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := r.queries.ListCartRecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart recipe IDs: %w", err)
	}
	return ids, nil
}

// Clear empties the user's cart.
func (r *Repository) Clear(ctx context.Context, userID int64) error {
	if err := r.queries.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
