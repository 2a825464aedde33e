package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// CategoryRepository implements trivia.CategoryStore over Postgres.
// Categories are seeded by migration, so this surface is read-only.
type CategoryRepository struct {
	db DB
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (trivia.Category, error) {
	var c trivia.Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Category{}, fmt.Errorf("category %d: %w", id, trivia.ErrCategoryNotFound)
	}
	if err != nil {
		return trivia.Category{}, fmt.Errorf("query category %d: %w", id, err)
	}
	return c, nil
}
