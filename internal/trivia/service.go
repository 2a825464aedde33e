package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// QuestionPage is the result of a paginated question listing.
type QuestionPage struct {
	Questions []Question
	Total     int
}

// Service orchestrates store access, pagination and quiz draws. All
// dependencies are injected; the service holds no global state.
type Service struct {
	questions  QuestionStore
	categories CategoryStore

	mu  sync.Mutex // guards rng; math/rand.Rand is not goroutine-safe
	rng Source
}

// ServiceOptions tunes optional service behavior.
type ServiceOptions struct {
	// Rand overrides the draw randomness source. Nil means a time-seeded
	// math/rand source.
	Rand Source
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		questions:  questions,
		categories: categories,
		rng:        rng,
	}
}

// ListCategories returns all categories ordered ascending by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.List(ctx)
}

// ListQuestions returns one page of the full question set plus the overall
// count. Total reflects every stored question, not the page length.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	return QuestionPage{Questions: Paginate(all, page), Total: len(all)}, nil
}

// QuestionsByCategory returns one page of a category's questions. The
// category must exist; ErrCategoryNotFound is returned before any question
// query runs.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (QuestionPage, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return QuestionPage{}, err
	}
	matched, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions by category %d: %w", categoryID, err)
	}
	return QuestionPage{Questions: Paginate(matched, page), Total: len(matched)}, nil
}

// SearchQuestions returns one page of questions whose text contains term,
// case-insensitively. An unmatched term is an empty page, never an error.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	matched, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	return QuestionPage{Questions: Paginate(matched, page), Total: len(matched)}, nil
}

// CreateQuestion validates the referenced category and inserts the question.
// A missing category yields ErrInvalidCategory without persisting a row.
func (s *Service) CreateQuestion(ctx context.Context, params InsertParams) (Question, error) {
	if _, err := s.categories.GetByID(ctx, params.Category); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return Question{}, fmt.Errorf("%w: %d", ErrInvalidCategory, params.Category)
		}
		return Question{}, fmt.Errorf("check category %d: %w", params.Category, err)
	}
	created, err := s.questions.Insert(ctx, params)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	return created, nil
}

// DeleteQuestion removes a question and reports how many remain.
// ErrQuestionNotFound passes through untouched for handler mapping.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) (int, error) {
	if err := s.questions.Delete(ctx, id); err != nil {
		return 0, err
	}
	remaining, err := s.questions.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count remaining questions: %w", err)
	}
	return len(remaining), nil
}

// DrawQuestion picks one unseen question at random from the category's pool,
// or from every question when categoryID is AllCategories. A nil question
// with a nil error means the pool is exhausted.
func (s *Service) DrawQuestion(ctx context.Context, categoryID int64, previous []int64) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questions.List(ctx)
	} else {
		pool, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve draw pool: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return Draw(pool, previous, s.rng), nil
}
