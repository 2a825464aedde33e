package trivia

import "context"

// PageSize is the fixed number of questions per page. It is a service-wide
// constant, not a per-request knob.
const PageSize = 10

// AllCategories is the sentinel quiz_category value meaning "draw from every
// category". Existing clients send 0; category ids are assigned from 1.
const AllCategories int64 = 0

// Category is a labeled grouping of questions. Categories are seeded by
// migration and immutable at runtime.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia item.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// InsertParams carries the fields of a question to be created; the store
// assigns the id.
type InsertParams struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// QuestionStore is the persistence surface the service needs for questions.
// Implemented by repository.QuestionRepository; tests substitute in-memory stubs.
type QuestionStore interface {
	// List returns every question ordered ascending by id.
	List(ctx context.Context) ([]Question, error)
	// ListByCategory returns the category's questions ordered ascending by id.
	// An empty slice is not an error; category existence is checked separately.
	ListByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	// Search matches term case-insensitively against question text only,
	// ordered ascending by id. An empty or unmatched term yields an empty slice.
	Search(ctx context.Context, term string) ([]Question, error)
	// Insert persists a question and returns it with its assigned id.
	Insert(ctx context.Context, params InsertParams) (Question, error)
	// Delete removes a question by id, returning ErrQuestionNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// CategoryStore is the read-only persistence surface for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	// GetByID returns ErrCategoryNotFound when the id is unknown.
	GetByID(ctx context.Context, id int64) (Category, error)
}
