package shopping

import (
	"context"
	"errors"
	"strings"
	"testing"

	"foodgram/internal/quantity"
	"foodgram/internal/recipe"
	"foodgram/internal/user"
)

type mockCarts struct {
	ids map[int64][]int64
	err error
}

func (m *mockCarts) RecipeIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ids[userID], nil
}

type mockRecipes struct {
	recipes map[int64]recipe.Recipe
	err     error
}

func (m *mockRecipes) GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []recipe.Recipe
	for _, id := range ids {
		if rec, ok := m.recipes[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

type mockUsers struct {
	users map[int64]*user.User
	err   error
}

func (m *mockUsers) Get(ctx context.Context, id int64) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func testFixture() (*mockCarts, *mockRecipes, *mockUsers) {
	carts := &mockCarts{ids: map[int64][]int64{7: {1, 2}}}
	recipes := &mockRecipes{recipes: map[int64]recipe.Recipe{
		1: {ID: 1, Ingredients: []recipe.Ingredient{
			{IngredientID: 1, Name: "сахар", MeasurementUnit: "г", Amount: quantity.FromInt(200)},
			{IngredientID: 2, Name: "лимон", MeasurementUnit: "шт", Amount: quantity.FromInt(1)},
		}},
		2: {ID: 2, Ingredients: []recipe.Ingredient{
			{IngredientID: 1, Name: "сахар", MeasurementUnit: "г", Amount: quantity.FromInt(50)},
		}},
	}}
	users := &mockUsers{users: map[int64]*user.User{
		7: {ID: 7, Username: "ivan", FirstName: "Иван", LastName: "Петров"},
	}}
	return carts, recipes, users
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carts, recipes, users := testFixture()
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		doc, err := exporter.Export(ctx, 7)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		body := string(doc.Data)
		if !strings.Contains(body, "сахар (г) — 250\n") {
			t.Errorf("Expected summed сахар line, got %q", body)
		}
		if !strings.Contains(body, "лимон (шт) — 1\n") {
			t.Errorf("Expected лимон line, got %q", body)
		}
	})

	t.Run("ZeroUserID", func(t *testing.T) {
		carts, recipes, users := testFixture()
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		if _, err := exporter.Export(ctx, 0); !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("Expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		carts, recipes, users := testFixture()
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		if _, err := exporter.Export(ctx, 99); !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("Expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("EmptyCart", func(t *testing.T) {
		carts, recipes, users := testFixture()
		carts.ids[7] = nil
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		doc, err := exporter.Export(ctx, 7)
		if err != nil {
			t.Fatalf("Export failed on empty cart: %v", err)
		}
		if !strings.Contains(string(doc.Data), "Иван Петров") {
			t.Errorf("Expected header-only document, got %q", string(doc.Data))
		}
	})

	t.Run("CartFetchFailure", func(t *testing.T) {
		carts, recipes, users := testFixture()
		carts.err = errors.New("database is locked")
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		_, err := exporter.Export(ctx, 7)
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Expected FetchError, got %v", err)
		}
		if !errors.Is(err, carts.err) {
			t.Errorf("Expected wrapped cause, got %v", err)
		}
	})

	t.Run("RecipeFetchFailure", func(t *testing.T) {
		carts, recipes, users := testFixture()
		recipes.err = errors.New("database is locked")
		exporter := NewExporter(carts, recipes, users, FormatTxt)

		_, err := exporter.Export(ctx, 7)
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Expected FetchError, got %v", err)
		}
	})
}
