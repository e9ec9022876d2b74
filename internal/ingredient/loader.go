package ingredient

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile bulk-loads the ingredient reference table from a fixture file.
// JSON fixtures are arrays of {"name", "measurement_unit"} objects; CSV
// fixtures are "name,measurement_unit" rows. Existing entries are kept.
// Returns the number of records read from the file.
func (r *Repository) LoadFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return r.loadJSON(ctx, file)
	case ".csv":
		return r.loadCSV(ctx, file)
	default:
		return 0, fmt.Errorf("unsupported fixture format %q (want .json or .csv)", filepath.Ext(path))
	}
}

func (r *Repository) loadJSON(ctx context.Context, src io.Reader) (int, error) {
	var records []Ingredient
	if err := json.NewDecoder(src).Decode(&records); err != nil {
		return 0, fmt.Errorf("failed to decode ingredient JSON: %w", err)
	}

	for i, rec := range records {
		if _, err := r.GetOrCreate(ctx, rec.Name, rec.MeasurementUnit); err != nil {
			return i, fmt.Errorf("failed to load ingredient %q: %w", rec.Name, err)
		}
	}
	return len(records), nil
}

func (r *Repository) loadCSV(ctx context.Context, src io.Reader) (int, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("failed to read ingredient CSV: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		if _, err := r.GetOrCreate(ctx, record[0], record[1]); err != nil {
			return loaded, fmt.Errorf("failed to load ingredient %q: %w", record[0], err)
		}
		loaded++
	}
	return loaded, nil
}
