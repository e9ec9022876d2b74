package shopping

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"foodgram/internal/quantity"
)

var renderMeta = Meta{
	UserName: "Иван Петров",
	Date:     time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC),
}

func TestParseFormat(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		for _, s := range []string{"txt", "xml"} {
			f, err := ParseFormat(s)
			if err != nil {
				t.Errorf("ParseFormat(%q) failed: %v", s, err)
			}
			if string(f) != s {
				t.Errorf("Expected format %q, got %q", s, f)
			}
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := ParseFormat("pdf"); err == nil {
			t.Error("Expected error for unknown format, got nil")
		}
	})
}

func TestRenderTxt(t *testing.T) {
	lines := []Line{
		{IngredientID: 1, Name: "лимон", MeasurementUnit: "шт", Amount: quantity.FromInt(1)},
		{IngredientID: 2, Name: "сахар", MeasurementUnit: "г", Amount: quantity.FromInt(250)},
	}

	doc, err := Render(lines, renderMeta, FormatTxt)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if doc.Filename != "shopping_list.txt" {
		t.Errorf("Expected filename shopping_list.txt, got %s", doc.Filename)
	}
	if !strings.HasPrefix(doc.ContentType, "text/plain") {
		t.Errorf("Expected text/plain content type, got %s", doc.ContentType)
	}

	body := string(doc.Data)
	if !strings.Contains(body, "Иван Петров") {
		t.Errorf("Expected user name in header, got %q", body)
	}
	if !strings.Contains(body, "08.03.2024") {
		t.Errorf("Expected date 08.03.2024 in header, got %q", body)
	}
	if !strings.Contains(body, "лимон (шт) — 1\n") {
		t.Errorf("Expected лимон line, got %q", body)
	}
	if !strings.Contains(body, "сахар (г) — 250\n") {
		t.Errorf("Expected сахар line, got %q", body)
	}
}

func TestRenderXML(t *testing.T) {
	lines := []Line{
		{IngredientID: 2, Name: "сахар", MeasurementUnit: "г", Amount: quantity.FromInt(250)},
	}

	doc, err := Render(lines, renderMeta, FormatXML)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if doc.Filename != "shopping_cart.xml" {
		t.Errorf("Expected filename shopping_cart.xml, got %s", doc.Filename)
	}

	var cart xmlCart
	if err := xml.Unmarshal(doc.Data, &cart); err != nil {
		t.Fatalf("Rendered XML does not parse: %v", err)
	}
	if cart.User.Name != "Иван Петров" {
		t.Errorf("Expected user name Иван Петров, got %s", cart.User.Name)
	}
	if cart.User.Date != "08.03.2024" {
		t.Errorf("Expected date 08.03.2024, got %s", cart.User.Date)
	}
	if len(cart.Ingredients) != 1 {
		t.Fatalf("Expected 1 ingredient, got %d", len(cart.Ingredients))
	}
	ing := cart.Ingredients[0]
	if ing.Name != "сахар" || ing.Amount != "250" || ing.MeasurementUnit != "г" {
		t.Errorf("Expected сахар/250/г, got %s/%s/%s", ing.Name, ing.Amount, ing.MeasurementUnit)
	}
}

func TestRenderEmptySelection(t *testing.T) {
	for _, format := range []Format{FormatTxt, FormatXML} {
		doc, err := Render(nil, renderMeta, format)
		if err != nil {
			t.Fatalf("Render(%s) failed on empty selection: %v", format, err)
		}
		if len(doc.Data) == 0 {
			t.Errorf("Expected a valid %s document for empty selection, got no data", format)
		}
	}
}
