// Package clipper imports recipes from web pages: it fetches a URL, strips
// the page down to text and asks an LLM to return the recipe as JSON.
package clipper

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"foodgram/internal/ingredient"
	"foodgram/internal/llm"
	"foodgram/internal/quantity"
	"foodgram/internal/recipe"
	"foodgram/internal/tag"
)

//go:embed extractor_prompt.md
var extractorPrompt string

// IngredientResolver maps extracted (name, unit) pairs onto the ingredient
// reference table.
type IngredientResolver interface {
	GetOrCreate(ctx context.Context, name, unit string) (*ingredient.Ingredient, error)
}

// RecipeStore persists the clipped recipe.
type RecipeStore interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
}

// TagResolver upserts extracted tag names. May be nil, in which case
// extracted tags are dropped.
type TagResolver interface {
	Save(ctx context.Context, t *tag.Tag) error
}

// MetaRecorder receives extraction metadata after each run.
type MetaRecorder interface {
	RecordMeta(meta llm.ExtractionMeta) error
}

// Clipper handles fetching and extracting recipes from URLs.
type Clipper struct {
	textGen     llm.TextGenerator
	ingredients IngredientResolver
	recipes     RecipeStore
	tags        TagResolver
	recorder    MetaRecorder
	httpClient  *http.Client
}

// extractedRecipe is the JSON shape the extraction prompt asks for.
type extractedRecipe struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	CookingTime int    `json:"cooking_time_minutes"`
	Ingredients []struct {
		Name            string `json:"name"`
		Amount          string `json:"amount"`
		MeasurementUnit string `json:"measurement_unit"`
	} `json:"ingredients"`
	Tags []string `json:"tags"`
}

// NewClipper creates a new Clipper instance. tags and recorder may be nil.
func NewClipper(textGen llm.TextGenerator, ingredients IngredientResolver, recipes RecipeStore, tags TagResolver, recorder MetaRecorder) *Clipper {
	return &Clipper{
		textGen:     textGen,
		ingredients: ingredients,
		recipes:     recipes,
		tags:        tags,
		recorder:    recorder,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// ClipURL fetches the URL, extracts the recipe and saves it under the given
// author. The saved recipe is returned with its ID set.
func (c *Clipper) ClipURL(ctx context.Context, url string, authorID int64) (*recipe.Recipe, error) {
	content, err := c.fetchAndCleanHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	started := time.Now()
	resp, err := c.textGen.GenerateContent(ctx, extractorPrompt+"\n"+content)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}
	if c.recorder != nil {
		_ = c.recorder.RecordMeta(llm.ExtractionMeta{
			Provider: "clipper",
			Usage:    resp.Usage,
			Latency:  time.Since(started),
		})
	}

	extracted, err := parseExtraction(resp.Content)
	if err != nil {
		return nil, err
	}
	if extracted.Name == "" {
		return nil, fmt.Errorf("no recipe found at %s", url)
	}

	rec, err := c.buildRecipe(ctx, extracted, authorID)
	if err != nil {
		return nil, err
	}
	if err := c.recipes.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save clipped recipe: %w", err)
	}
	return rec, nil
}

func parseExtraction(content string) (*extractedRecipe, error) {
	// Some models wrap JSON in a markdown code fence despite instructions.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var extracted extractedRecipe
	if err := json.Unmarshal([]byte(content), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, content)
	}
	return &extracted, nil
}

func (c *Clipper) buildRecipe(ctx context.Context, extracted *extractedRecipe, authorID int64) (*recipe.Recipe, error) {
	rec := &recipe.Recipe{
		AuthorID:    authorID,
		Name:        extracted.Name,
		Text:        extracted.Text,
		CookingTime: extracted.CookingTime,
	}
	if rec.CookingTime < 1 {
		rec.CookingTime = 1
	}

	for _, ing := range extracted.Ingredients {
		amount, err := quantity.Parse(ing.Amount)
		if err != nil {
			return nil, fmt.Errorf("extracted ingredient %q has bad amount: %w", ing.Name, err)
		}
		resolved, err := c.ingredients.GetOrCreate(ctx, ing.Name, ing.MeasurementUnit)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ingredient %q: %w", ing.Name, err)
		}
		rec.Ingredients = append(rec.Ingredients, recipe.Ingredient{
			IngredientID:    resolved.ID,
			Name:            resolved.Name,
			MeasurementUnit: resolved.MeasurementUnit,
			Amount:          amount,
		})
	}

	if c.tags != nil {
		for _, name := range extracted.Tags {
			t := &tag.Tag{Name: name, Slug: slugify(name)}
			if t.Slug == "" {
				continue
			}
			if err := c.tags.Save(ctx, t); err != nil {
				return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
			}
			rec.Tags = append(rec.Tags, *t)
		}
	}
	return rec, nil
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func (c *Clipper) fetchAndCleanHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}
