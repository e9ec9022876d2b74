package shopping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram/internal/recipe"
	"foodgram/internal/user"
)

// ErrNotAuthenticated is returned when an export is requested without a
// known user identity.
var ErrNotAuthenticated = errors.New("user is not authenticated")

// FetchError wraps a storage failure hit while collecting export data, so
// callers can tell a broken fetch apart from an empty cart.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CartResolver yields the recipe IDs a user has selected for shopping.
type CartResolver interface {
	RecipeIDs(ctx context.Context, userID int64) ([]int64, error)
}

// RecipeSource loads recipes with their ingredient triples.
type RecipeSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error)
}

// UserSource resolves the exporting user for the document header.
type UserSource interface {
	Get(ctx context.Context, id int64) (*user.User, error)
}

// Exporter builds shopping list documents from a user's cart. The output
// format is fixed at construction from configuration.
type Exporter struct {
	carts   CartResolver
	recipes RecipeSource
	users   UserSource
	format  Format
	now     func() time.Time
}

// NewExporter creates an Exporter rendering in the given format.
func NewExporter(carts CartResolver, recipes RecipeSource, users UserSource, format Format) *Exporter {
	return &Exporter{
		carts:   carts,
		recipes: recipes,
		users:   users,
		format:  format,
		now:     time.Now,
	}
}

// Export resolves the user's cart, aggregates the ingredient triples and
// renders the document. An empty cart produces a valid document with no
// entries. Storage failures come back wrapped in *FetchError.
func (e *Exporter) Export(ctx context.Context, userID int64) (*Document, error) {
	if userID <= 0 {
		return nil, ErrNotAuthenticated
	}
	u, err := e.users.Get(ctx, userID)
	if err != nil {
		return nil, &FetchError{Op: "user", Err: err}
	}
	if u == nil {
		return nil, ErrNotAuthenticated
	}

	ids, err := e.carts.RecipeIDs(ctx, userID)
	if err != nil {
		return nil, &FetchError{Op: "cart", Err: err}
	}

	var recipes []recipe.Recipe
	if len(ids) > 0 {
		recipes, err = e.recipes.GetByIDs(ctx, ids)
		if err != nil {
			return nil, &FetchError{Op: "recipes", Err: err}
		}
	}

	lines := Aggregate(recipes)
	return Render(lines, Meta{UserName: u.FullName(), Date: e.now()}, e.format)
}
