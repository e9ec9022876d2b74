package acceptance_tests

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"foodgram/internal/cart"
	"foodgram/internal/database"
	"foodgram/internal/ingredient"
	"foodgram/internal/quantity"
	"foodgram/internal/recipe"
	"foodgram/internal/shopping"
	"foodgram/internal/user"
)

// setupDB opens a fresh migrated database in a temp directory.
func setupDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "foodgram.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestShoppingListExportWorkflow(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	userRepo := user.NewRepository(db.SQL)
	ingredientRepo := ingredient.NewRepository(db.SQL)
	recipeRepo := recipe.NewRepository(db.SQL)
	cartRepo := cart.NewRepository(db.SQL)

	// Register the shopper.
	shopper := &user.User{Email: "ivan@example.com", FirstName: "Иван", LastName: "Петров"}
	if err := userRepo.Create(ctx, shopper); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// Seed the ingredient reference table.
	sugar, err := ingredientRepo.GetOrCreate(ctx, "сахар", "г")
	if err != nil {
		t.Fatalf("Failed to seed ingredient: %v", err)
	}
	lemon, err := ingredientRepo.GetOrCreate(ctx, "лимон", "шт")
	if err != nil {
		t.Fatalf("Failed to seed ingredient: %v", err)
	}

	// Publish two recipes sharing an ingredient.
	pie := &recipe.Recipe{
		AuthorID:    shopper.ID,
		Name:        "Лимонный пирог",
		Text:        "Смешать и выпекать.",
		CookingTime: 45,
		Ingredients: []recipe.Ingredient{
			{IngredientID: sugar.ID, Amount: quantity.FromInt(200)},
			{IngredientID: lemon.ID, Amount: quantity.FromInt(1)},
		},
	}
	if err := recipeRepo.Create(ctx, pie); err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}
	tea := &recipe.Recipe{
		AuthorID:    shopper.ID,
		Name:        "Чай с сахаром",
		Text:        "Заварить.",
		CookingTime: 5,
		Ingredients: []recipe.Ingredient{
			{IngredientID: sugar.ID, Amount: quantity.FromInt(50)},
		},
	}
	if err := recipeRepo.Create(ctx, tea); err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	// Fill the cart.
	if err := cartRepo.Add(ctx, shopper.ID, pie.ID); err != nil {
		t.Fatalf("Failed to add to cart: %v", err)
	}
	if err := cartRepo.Add(ctx, shopper.ID, tea.ID); err != nil {
		t.Fatalf("Failed to add to cart: %v", err)
	}

	// Export.
	exporter := shopping.NewExporter(cartRepo, recipeRepo, userRepo, shopping.FormatTxt)
	doc, err := exporter.Export(ctx, shopper.ID)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	body := string(doc.Data)
	if !strings.Contains(body, "Иван Петров") {
		t.Errorf("Expected shopper name in document, got %q", body)
	}
	if !strings.Contains(body, "сахар (г) — 250") {
		t.Errorf("Expected summed сахар line, got %q", body)
	}
	if !strings.Contains(body, "лимон (шт) — 1") {
		t.Errorf("Expected лимон line, got %q", body)
	}
	if strings.Count(body, "сахар") != 1 {
		t.Errorf("Expected exactly one сахар line, got %q", body)
	}

	// Removing a recipe from the cart changes the next export.
	if err := cartRepo.Remove(ctx, shopper.ID, tea.ID); err != nil {
		t.Fatalf("Failed to remove from cart: %v", err)
	}
	doc, err = exporter.Export(ctx, shopper.ID)
	if err != nil {
		t.Fatalf("Export failed after removal: %v", err)
	}
	if !strings.Contains(string(doc.Data), "сахар (г) — 200") {
		t.Errorf("Expected сахар 200 after removal, got %q", string(doc.Data))
	}
}

func TestExportRequiresKnownUser(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	exporter := shopping.NewExporter(
		cart.NewRepository(db.SQL),
		recipe.NewRepository(db.SQL),
		user.NewRepository(db.SQL),
		shopping.FormatTxt,
	)

	if _, err := exporter.Export(ctx, 12345); !errors.Is(err, shopping.ErrNotAuthenticated) {
		t.Errorf("Expected ErrNotAuthenticated for unknown user, got %v", err)
	}
}

func TestExportEmptyCart(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	userRepo := user.NewRepository(db.SQL)
	shopper := &user.User{Email: "empty@example.com", FirstName: "Анна"}
	if err := userRepo.Create(ctx, shopper); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	exporter := shopping.NewExporter(
		cart.NewRepository(db.SQL),
		recipe.NewRepository(db.SQL),
		userRepo,
		shopping.FormatXML,
	)

	doc, err := exporter.Export(ctx, shopper.ID)
	if err != nil {
		t.Fatalf("Export failed on empty cart: %v", err)
	}
	if !strings.Contains(string(doc.Data), "<ShoppingCart>") {
		t.Errorf("Expected a valid XML document, got %q", string(doc.Data))
	}
}
