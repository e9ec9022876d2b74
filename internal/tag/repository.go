package tag

import (
	"context"
	"database/sql"
	"fmt"

	tagdb "foodgram/internal/tag/db"
)

// Repository is a database-backed repository for tags.
type Repository struct {
	queries *tagdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: tagdb.New(d),
		db:      d,
	}
}

// Save inserts a tag, updating the name when the slug already exists.
func (r *Repository) Save(ctx context.Context, t *Tag) error {
	id, err := r.queries.InsertTag(ctx, tagdb.InsertTagParams{
		Name: t.Name,
		Slug: t.Slug,
	})
	if err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}
	t.ID = id
	return nil
}

// GetBySlug retrieves a tag by slug. Returns nil when not found.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Tag, error) {
	dbTag, err := r.queries.GetTagBySlug(ctx, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag by slug: %w", err)
	}
	return &Tag{ID: dbTag.ID, Name: dbTag.Name, Slug: dbTag.Slug}, nil
}

// List returns all tags ordered by name.
func (r *Repository) List(ctx context.Context) ([]Tag, error) {
	dbTags, err := r.queries.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []Tag
	for _, dbTag := range dbTags {
		tags = append(tags, Tag{ID: dbTag.ID, Name: dbTag.Name, Slug: dbTag.Slug})
	}
	return tags, nil
}
