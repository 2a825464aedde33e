package trivia

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is, so store
// implementations should wrap rather than replace them.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("question references unknown category")
)
