package clipper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodgram/internal/ingredient"
	"foodgram/internal/llm"
	"foodgram/internal/recipe"
)

// --- Mocks ---

type MockTextGenerator struct {
	Response    string
	ShouldError bool
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	if m.ShouldError {
		return llm.ContentResponse{}, fmt.Errorf("mock ai error")
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

type MockIngredientResolver struct {
	nextID int64
	byKey  map[string]*ingredient.Ingredient
}

func (m *MockIngredientResolver) GetOrCreate(ctx context.Context, name, unit string) (*ingredient.Ingredient, error) {
	if m.byKey == nil {
		m.byKey = make(map[string]*ingredient.Ingredient)
	}
	key := name + "|" + unit
	if ing, ok := m.byKey[key]; ok {
		return ing, nil
	}
	m.nextID++
	ing := &ingredient.Ingredient{ID: m.nextID, Name: name, MeasurementUnit: unit}
	m.byKey[key] = ing
	return ing, nil
}

type MockRecipeStore struct {
	Saved       *recipe.Recipe
	ShouldError bool
}

func (m *MockRecipeStore) Create(ctx context.Context, rec *recipe.Recipe) error {
	if m.ShouldError {
		return fmt.Errorf("mock store error")
	}
	rec.ID = 101
	m.Saved = rec
	return nil
}

// --- Tests ---

func TestFetchAndCleanHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html := `
		<html>
			<head><script>alert('bad');</script></head>
			<body>
				<h1>Tasty Recipe</h1>
				<div class="ads">Buy stuff!</div>
				<p>Mix flour and water.</p>
				<script>more_bad_stuff()</script>
				<footer>Copyright 2024</footer>
			</body>
		</html>`
		w.Write([]byte(html))
	}))
	defer ts.Close()

	c := NewClipper(&MockTextGenerator{}, &MockIngredientResolver{}, &MockRecipeStore{}, nil, nil)

	cleanText, err := c.fetchAndCleanHTML(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(cleanText, "alert('bad')") {
		t.Error("Failed to remove <script> tags")
	}
	if strings.Contains(cleanText, "Buy stuff!") {
		t.Error("Failed to remove .ads class")
	}
	if strings.Contains(cleanText, "Copyright 2024") {
		t.Error("Failed to remove <footer>")
	}
	if !strings.Contains(cleanText, "Tasty Recipe") {
		t.Error("Expected to find 'Tasty Recipe'")
	}
	if !strings.Contains(cleanText, "Mix flour and water.") {
		t.Error("Expected to find body content")
	}
}

func TestClipURL_Success(t *testing.T) {
	aiResponse := `{
		"name": "Лимонный пирог",
		"text": "Смешать и выпекать.",
		"cooking_time_minutes": 45,
		"ingredients": [
			{"name": "сахар", "amount": "200", "measurement_unit": "г"},
			{"name": "лимон", "amount": "1", "measurement_unit": "шт"}
		],
		"tags": ["desert"]
	}`

	store := &MockRecipeStore{}
	c := NewClipper(&MockTextGenerator{Response: aiResponse}, &MockIngredientResolver{}, store, nil, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Some Content</body></html>"))
	}))
	defer ts.Close()

	rec, err := c.ClipURL(context.Background(), ts.URL, 7)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}

	if rec.Name != "Лимонный пирог" {
		t.Errorf("Expected name 'Лимонный пирог', got '%s'", rec.Name)
	}
	if rec.AuthorID != 7 {
		t.Errorf("Expected author 7, got %d", rec.AuthorID)
	}
	if store.Saved == nil {
		t.Fatal("Expected recipe store Create to be called")
	}
	if len(store.Saved.Ingredients) != 2 {
		t.Fatalf("Expected 2 ingredients, got %d", len(store.Saved.Ingredients))
	}
	if got := store.Saved.Ingredients[0].Amount.String(); got != "200" {
		t.Errorf("Expected amount 200, got %s", got)
	}
}

func TestClipURL_FencedResponse(t *testing.T) {
	aiResponse := "```json\n" + `{"name": "Pie", "text": "Bake.", "cooking_time_minutes": 30,
		"ingredients": [{"name": "apple", "amount": "3", "measurement_unit": "pc"}]}` + "\n```"

	store := &MockRecipeStore{}
	c := NewClipper(&MockTextGenerator{Response: aiResponse}, &MockIngredientResolver{}, store, nil, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Some Content</body></html>"))
	}))
	defer ts.Close()

	rec, err := c.ClipURL(context.Background(), ts.URL, 1)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}
	if rec.Name != "Pie" {
		t.Errorf("Expected name 'Pie', got '%s'", rec.Name)
	}
}

func TestClipURL_NoRecipe(t *testing.T) {
	c := NewClipper(&MockTextGenerator{Response: `{"name": ""}`}, &MockIngredientResolver{}, &MockRecipeStore{}, nil, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Not food</body></html>"))
	}))
	defer ts.Close()

	if _, err := c.ClipURL(context.Background(), ts.URL, 1); err == nil {
		t.Error("Expected error for page without a recipe, got nil")
	}
}

func TestClipURL_BadAmount(t *testing.T) {
	aiResponse := `{"name": "Pie", "cooking_time_minutes": 30,
		"ingredients": [{"name": "apple", "amount": "some", "measurement_unit": "pc"}]}`

	c := NewClipper(&MockTextGenerator{Response: aiResponse}, &MockIngredientResolver{}, &MockRecipeStore{}, nil, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Some Content</body></html>"))
	}))
	defer ts.Close()

	if _, err := c.ClipURL(context.Background(), ts.URL, 1); err == nil {
		t.Error("Expected error for unparseable amount, got nil")
	}
}
