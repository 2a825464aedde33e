package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// DB is the slice of pgxpool.Pool behavior the repositories need, kept narrow
// so tests can substitute a fake connection.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QuestionRepository implements trivia.QuestionStore over Postgres.
type QuestionRepository struct {
	db DB
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return collectQuestions(rows)
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return collectQuestions(rows)
}

// Search matches term against the question text only, never the answer. An
// empty term short-circuits to an empty result instead of matching everything.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	if term == "" {
		return []trivia.Question{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, difficulty FROM questions
		 WHERE question ILIKE '%' || $1 || '%' ORDER BY id`,
		term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows)
}

func (r *QuestionRepository) Insert(ctx context.Context, params trivia.InsertParams) (trivia.Question, error) {
	var q trivia.Question
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, question, answer, category, difficulty`,
		params.Question, params.Answer, params.Category, params.Difficulty,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete question %d: %w", id, trivia.ErrQuestionNotFound)
	}
	return nil
}

func collectQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question rows: %w", err)
	}
	return questions, nil
}
