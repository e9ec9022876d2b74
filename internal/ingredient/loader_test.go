package ingredient

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodgram/internal/database"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("JSON", func(t *testing.T) {
		repo := setupRepo(t)
		path := writeFixture(t, "ingredients.json", `[
			{"name": "абрикосовое варенье", "measurement_unit": "г"},
			{"name": "яйца", "measurement_unit": "шт"}
		]`)

		count, err := repo.LoadFile(ctx, path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 records, got %d", count)
		}

		total, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if total != 2 {
			t.Errorf("Expected 2 ingredients in table, got %d", total)
		}
	})

	t.Run("CSV", func(t *testing.T) {
		repo := setupRepo(t)
		path := writeFixture(t, "ingredients.csv", "мука,г\nмолоко,мл\n")

		count, err := repo.LoadFile(ctx, path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Expected 2 records, got %d", count)
		}
	})

	t.Run("DuplicatesKeptOnce", func(t *testing.T) {
		repo := setupRepo(t)
		path := writeFixture(t, "ingredients.csv", "мука,г\nмука,г\n")

		if _, err := repo.LoadFile(ctx, path); err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		total, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if total != 1 {
			t.Errorf("Expected a single мука row, got %d", total)
		}
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		repo := setupRepo(t)
		path := writeFixture(t, "ingredients.yaml", "name: мука")

		if _, err := repo.LoadFile(ctx, path); err == nil {
			t.Error("Expected error for unsupported fixture format, got nil")
		}
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	for _, pair := range [][2]string{{"мука", "г"}, {"мука ржаная", "г"}, {"молоко", "мл"}} {
		if _, err := repo.GetOrCreate(ctx, pair[0], pair[1]); err != nil {
			t.Fatalf("GetOrCreate failed: %v", err)
		}
	}

	found, err := repo.Search(ctx, "мук", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("Expected 2 matches for prefix мук, got %d", len(found))
	}
}
