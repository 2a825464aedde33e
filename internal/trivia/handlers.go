package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers backed by the trivia service.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type createOrSearchRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty int32   `json:"difficulty"`
	Category   int64   `json:"category"`
	SearchTerm *string `json:"searchTerm"`
}

type quizRequest struct {
	PreviousQuestions []int64 `json:"previous_questions"`
	QuizCategory      *int64  `json:"quiz_category"`
}

// GetCategories handles GET /categories.
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categoryMap(cats),
	})
}

// GetQuestions handles GET /questions?page=N. An empty page is a 404.
func (h *HTTPHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Int("page", page).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}
	if len(result.Questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      categoryMap(cats),
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	remaining, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("question_id", id).Msg("delete question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         id,
		"total_questions": remaining,
	})
}

// CreateOrSearchQuestions handles POST /questions. The two operations share
// one route: a present searchTerm means search, otherwise create.
func (h *HTTPHandlers) CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req createOrSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	if req.SearchTerm != nil {
		h.searchQuestions(w, r, *req.SearchTerm)
		return
	}
	h.createQuestion(w, r, req)
}

func (h *HTTPHandlers) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	result, err := h.svc.SearchQuestions(r.Context(), term, parsePage(r))
	if err != nil {
		h.logger.Error().Err(err).Str("term", term).Msg("search questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	// Unlike the list endpoints, an empty search result is a success.
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request, req createOrSearchRequest) {
	created, err := h.svc.CreateQuestion(r.Context(), InsertParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidCategory) {
			h.logger.Error().Err(err).Msg("create question failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	result, err := h.svc.ListQuestions(r.Context(), parsePage(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions after create failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         created.ID,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// GetQuestionsByCategory handles GET /categories/{id}/questions?page=N.
func (h *HTTPHandlers) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), categoryID, parsePage(r))
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("category_id", categoryID).Msg("list questions by category failed")
		httperrors.RespondInternalError(w)
		return
	}
	if len(result.Questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"current_category": categoryID,
		"questions":        result.Questions,
		"total_questions":  result.Total,
	})
}

// PlayQuiz handles POST /quiz. Exhaustion is a success with a null question;
// only a body without quiz_category is a 404.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondNotFound(w)
		return
	}

	question, err := h.svc.DrawQuestion(r.Context(), *req.QuizCategory, req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int64("quiz_category", *req.QuizCategory).Msg("quiz draw failed")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"question":      question,
		"quiz_category": *req.QuizCategory,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}

// parsePage reads the page query parameter, clamping anything unusable to 1.
func parsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

func categoryMap(cats []Category) map[int64]Category {
	m := make(map[int64]Category, len(cats))
	for _, c := range cats {
		m[c.ID] = c
	}
	return m
}
