package recipe

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodgram/internal/quantity"
	recipedb "foodgram/internal/recipe/db"
	"foodgram/internal/tag"
)

// Repository is a database-backed repository for recipes, their ingredient
// triples, tags and favorites.
type Repository struct {
	queries *recipedb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: recipedb.New(d),
		db:      d,
	}
}

// Filter narrows a recipe listing. Zero values mean "no restriction";
// a zero Limit falls back to a default page size.
type Filter struct {
	AuthorID int64
	TagSlug  string
	Limit    int
	Offset   int
}

const defaultPageSize = 20

func validate(rec *Recipe) error {
	if rec.Name == "" {
		return fmt.Errorf("recipe name must be set")
	}
	if rec.CookingTime < 1 {
		return fmt.Errorf("cooking time must be at least 1 minute")
	}
	if len(rec.Ingredients) == 0 {
		return fmt.Errorf("recipe must have at least one ingredient")
	}
	for _, ing := range rec.Ingredients {
		if ing.Amount <= 0 {
			return fmt.Errorf("ingredient %d amount must be positive", ing.IngredientID)
		}
	}
	return nil
}

// Create inserts a recipe together with its ingredient triples and tag links
// in one transaction. The recipe ID is written back into rec. Repeated entries
// for the same ingredient are kept as separate rows would collide on the
// primary key, so they are merged by summing their amounts first.
func (r *Repository) Create(ctx context.Context, rec *Recipe) error {
	if err := validate(rec); err != nil {
		return err
	}
	if rec.PubDate.IsZero() {
		rec.PubDate = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	id, err := q.InsertRecipe(ctx, recipedb.InsertRecipeParams{
		AuthorID:    rec.AuthorID,
		Name:        rec.Name,
		Text:        rec.Text,
		CookingTime: int64(rec.CookingTime),
		PubDate:     rec.PubDate,
	})
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	if err := insertTriples(ctx, q, id, rec.Ingredients); err != nil {
		return err
	}
	if err := insertTagLinks(ctx, q, id, rec.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe: %w", err)
	}
	rec.ID = id
	return nil
}

// Update replaces a recipe's fields, ingredient triples and tag links in one
// transaction.
func (r *Repository) Update(ctx context.Context, rec *Recipe) error {
	if rec.ID == 0 {
		return fmt.Errorf("recipe ID must be set")
	}
	if err := validate(rec); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	if err := q.UpdateRecipe(ctx, recipedb.UpdateRecipeParams{
		Name:        rec.Name,
		Text:        rec.Text,
		CookingTime: int64(rec.CookingTime),
		ID:          rec.ID,
	}); err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if err := q.DeleteRecipeIngredients(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	if err := insertTriples(ctx, q, rec.ID, rec.Ingredients); err != nil {
		return err
	}
	if err := q.DeleteRecipeTags(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to clear recipe tags: %w", err)
	}
	if err := insertTagLinks(ctx, q, rec.ID, rec.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe update: %w", err)
	}
	return nil
}

func insertTriples(ctx context.Context, q *recipedb.Queries, recipeID int64, ings []Ingredient) error {
	merged := make([]Ingredient, 0, len(ings))
	index := make(map[int64]int, len(ings))
	for _, ing := range ings {
		if i, ok := index[ing.IngredientID]; ok {
			merged[i].Amount = merged[i].Amount.Add(ing.Amount)
			continue
		}
		index[ing.IngredientID] = len(merged)
		merged = append(merged, ing)
	}
	for pos, ing := range merged {
		err := q.InsertRecipeIngredient(ctx, recipedb.InsertRecipeIngredientParams{
			RecipeID:     recipeID,
			IngredientID: ing.IngredientID,
			AmountMilli:  ing.Amount.Milli(),
			Position:     int64(pos),
		})
		if err != nil {
			return fmt.Errorf("failed to insert recipe ingredient %d: %w", ing.IngredientID, err)
		}
	}
	return nil
}

func insertTagLinks(ctx context.Context, q *recipedb.Queries, recipeID int64, tags []tag.Tag) error {
	for _, t := range tags {
		err := q.InsertRecipeTag(ctx, recipedb.InsertRecipeTagParams{
			RecipeID: recipeID,
			TagID:    t.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to insert recipe tag %d: %w", t.ID, err)
		}
	}
	return nil
}

// Delete removes a recipe. Ingredient triples, tag links, favorites and cart
// entries follow via foreign key cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// Get retrieves a recipe by ID with its ingredient triples and tags loaded.
// Returns nil when the recipe does not exist.
func (r *Repository) Get(ctx context.Context, id int64) (*Recipe, error) {
	dbRec, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	rec := fromDB(dbRec)
	if err := r.loadIngredients(ctx, []*Recipe{&rec}); err != nil {
		return nil, err
	}
	dbTags, err := r.queries.ListTagsForRecipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for recipe %d: %w", id, err)
	}
	for _, t := range dbTags {
		rec.Tags = append(rec.Tags, tag.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return &rec, nil
}

// GetByIDs retrieves multiple recipes with their ingredient triples loaded,
// ordered by ID. IDs that do not exist are silently skipped.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	dbRecs, err := r.queries.ListRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes by IDs: %w", err)
	}

	recipes := make([]Recipe, len(dbRecs))
	refs := make([]*Recipe, len(dbRecs))
	for i, dbRec := range dbRecs {
		recipes[i] = fromDB(dbRec)
		refs[i] = &recipes[i]
	}
	if err := r.loadIngredients(ctx, refs); err != nil {
		return nil, err
	}
	return recipes, nil
}

// List retrieves recipes matching the filter, newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]Recipe, error) {
	limit := int64(f.Limit)
	if limit <= 0 {
		limit = defaultPageSize
	}

	var dbRecs []recipedb.Recipe
	var err error
	switch {
	case f.TagSlug != "":
		dbRecs, err = r.queries.ListRecipesByTagSlug(ctx, recipedb.ListRecipesByTagSlugParams{
			Slug:   f.TagSlug,
			Limit:  limit,
			Offset: int64(f.Offset),
		})
	case f.AuthorID != 0:
		dbRecs, err = r.queries.ListRecipesByAuthor(ctx, recipedb.ListRecipesByAuthorParams{
			AuthorID: f.AuthorID,
			Limit:    limit,
			Offset:   int64(f.Offset),
		})
	default:
		dbRecs, err = r.queries.ListRecipes(ctx, recipedb.ListRecipesParams{
			Limit:  limit,
			Offset: int64(f.Offset),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, len(dbRecs))
	for i, dbRec := range dbRecs {
		recipes[i] = fromDB(dbRec)
	}
	return recipes, nil
}

// Search finds recipes whose name contains the given text, newest first.
func (r *Repository) Search(ctx context.Context, name string, limit int) ([]Recipe, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	dbRecs, err := r.queries.SearchRecipesByName(ctx, recipedb.SearchRecipesByNameParams{
		Name:  "%" + name + "%",
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	recipes := make([]Recipe, len(dbRecs))
	for i, dbRec := range dbRecs {
		recipes[i] = fromDB(dbRec)
	}
	return recipes, nil
}

// Favorite marks a recipe as a favorite of the user. Adding the same recipe
// twice is an error from the unique constraint.
func (r *Repository) Favorite(ctx context.Context, userID, recipeID int64) error {
	err := r.queries.InsertFavorite(ctx, recipedb.InsertFavoriteParams{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// Unfavorite removes a recipe from the user's favorites.
func (r *Repository) Unfavorite(ctx context.Context, userID, recipeID int64) error {
	err := r.queries.DeleteFavorite(ctx, recipedb.DeleteFavoriteParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the recipe is among the user's favorites.
func (r *Repository) IsFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	count, err := r.queries.CountFavorite(ctx, recipedb.CountFavoriteParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to count favorite: %w", err)
	}
	return count > 0, nil
}

// Favorites lists the user's favorite recipes, newest first.
func (r *Repository) Favorites(ctx context.Context, userID int64, limit, offset int) ([]Recipe, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	dbRecs, err := r.queries.ListFavoriteRecipes(ctx, recipedb.ListFavoriteRecipesParams{
		UserID: userID,
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite recipes: %w", err)
	}

	recipes := make([]Recipe, len(dbRecs))
	for i, dbRec := range dbRecs {
		recipes[i] = fromDB(dbRec)
	}
	return recipes, nil
}

// loadIngredients fetches the ingredient triples for the given recipes in one
// query and attaches them in stored position order.
func (r *Repository) loadIngredients(ctx context.Context, recipes []*Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]int64, len(recipes))
	byID := make(map[int64]*Recipe, len(recipes))
	for i, rec := range recipes {
		ids[i] = rec.ID
		byID[rec.ID] = rec
	}

	rows, err := r.queries.ListIngredientsForRecipes(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to list ingredients for recipes: %w", err)
	}
	for _, row := range rows {
		rec, ok := byID[row.RecipeID]
		if !ok {
			continue
		}
		rec.Ingredients = append(rec.Ingredients, Ingredient{
			IngredientID:    row.IngredientID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          quantity.FromMilli(row.AmountMilli),
		})
	}
	return nil
}

func fromDB(dbRec recipedb.Recipe) Recipe {
	return Recipe{
		ID:          dbRec.ID,
		AuthorID:    dbRec.AuthorID,
		Name:        dbRec.Name,
		Text:        dbRec.Text,
		CookingTime: int(dbRec.CookingTime),
		PubDate:     dbRec.PubDate,
	}
}
