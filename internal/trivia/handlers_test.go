package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(store *memoryStore) *http.ServeMux {
	handlers := NewHTTPHandlers(newTestService(store, 1), zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", handlers.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.GetQuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.GetQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateOrSearchQuestions)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /quiz", handlers.PlayQuiz)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestGetCategories(t *testing.T) {
	store := newMemoryStore()
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	categories, ok := body["categories"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 3)

	science, ok := categories["1"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Science", science["type"])
}

func TestGetQuestionsPaging(t *testing.T) {
	store := newMemoryStore()
	store.seed(19, 1, 2, 3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodGet, "/questions?page=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["questions"], 10)
	assert.EqualValues(t, 19, body["total_questions"])
	assert.Len(t, body["categories"], 3)

	rec, body = doRequest(t, mux, http.MethodGet, "/questions?page=2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"], 9)
	assert.EqualValues(t, 19, body["total_questions"])

	rec, body = doRequest(t, mux, http.MethodGet, "/questions?page=3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusNotFound, body["error"])
	assert.Equal(t, "Not found", body["message"])
}

func TestGetQuestionsBadPageDefaultsToFirst(t *testing.T) {
	store := newMemoryStore()
	store.seed(12)
	mux := newTestMux(store)

	for _, target := range []string{"/questions", "/questions?page=0", "/questions?page=-3", "/questions?page=abc"} {
		rec, body := doRequest(t, mux, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Len(t, body["questions"], 10, target)
	}
}

func TestGetQuestionsHugePageIsNotFound(t *testing.T) {
	store := newMemoryStore()
	store.seed(5)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodGet, "/questions?page=1844674407370955162", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestSearchQuestions(t *testing.T) {
	store := newMemoryStore()
	store.add(Question{Question: "What movie earned the title of best picture?", Answer: "x", Category: 1, Difficulty: 1})
	store.add(Question{Question: "Which novel's TITLE is one word long?", Answer: "y", Category: 2, Difficulty: 2})
	store.add(Question{Question: "Who painted the ceiling?", Answer: "z", Category: 2, Difficulty: 2})
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/questions", map[string]interface{}{"searchTerm": "title"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["total_questions"])
	assert.Len(t, body["questions"], 2)
}

func TestSearchQuestionsNoMatchesIsSuccess(t *testing.T) {
	store := newMemoryStore()
	store.seed(5)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/questions", map[string]interface{}{"searchTerm": "zblut"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 0, body["total_questions"])
	assert.Len(t, body["questions"], 0)
}

func TestCreateQuestion(t *testing.T) {
	store := newMemoryStore()
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What is the capital of France?",
		"answer":     "Paris",
		"difficulty": 1,
		"category":   3,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["created"])
	assert.EqualValues(t, 1, body["total_questions"])
	assert.Len(t, body["questions"], 1)
}

func TestCreateQuestionUnknownCategory(t *testing.T) {
	store := newMemoryStore()
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What is the capital of France?",
		"answer":     "Paris",
		"difficulty": 1,
		"category":   3839,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusUnprocessableEntity, body["error"])
	assert.Equal(t, "Unprocessable", body["message"])
	assert.Zero(t, store.count())
}

func TestCreateQuestionMalformedBody(t *testing.T) {
	store := newMemoryStore()
	mux := newTestMux(store)

	req := httptest.NewRequest(http.MethodPost, "/questions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteQuestionLifecycle(t *testing.T) {
	store := newMemoryStore()
	store.seed(3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodDelete, "/questions/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["deleted"])
	assert.EqualValues(t, 2, body["total_questions"])

	// Deleting the same id again confirms absence.
	rec, body = doRequest(t, mux, http.MethodDelete, "/questions/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestDeleteQuestionUnknownID(t *testing.T) {
	store := newMemoryStore()
	store.seed(3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodDelete, "/questions/320", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, 3, store.count())
}

func TestGetQuestionsByCategory(t *testing.T) {
	store := newMemoryStore()
	store.seed(12, 1, 2, 3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodGet, "/categories/3/questions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 3, body["current_category"])
	assert.EqualValues(t, 4, body["total_questions"])

	questions, ok := body["questions"].([]interface{})
	require.True(t, ok)
	for _, raw := range questions {
		q, ok := raw.(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, 3, q["category"])
	}
}

func TestGetQuestionsByCategoryNotFound(t *testing.T) {
	store := newMemoryStore()
	store.seed(12, 1, 2, 3)
	mux := newTestMux(store)

	// Unknown category.
	rec, body := doRequest(t, mux, http.MethodGet, "/categories/3000/questions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])

	// Known category, page beyond its data.
	rec, body = doRequest(t, mux, http.MethodGet, "/categories/3/questions?page=10000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestPlayQuiz(t *testing.T) {
	store := newMemoryStore()
	store.seed(9, 1, 2, 3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
		"previous_questions": []int64{},
		"quiz_category":      3,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 3, body["quiz_category"])

	question, ok := body["question"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, question["category"])
}

func TestPlayQuizAllCategories(t *testing.T) {
	store := newMemoryStore()
	store.seed(6, 1, 2, 3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
		"previous_questions": []int64{},
		"quiz_category":      0,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, body["question"])
}

func TestPlayQuizExhaustionReturnsNullQuestion(t *testing.T) {
	store := newMemoryStore()
	store.seed(2, 1)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
		"previous_questions": []int64{1, 2},
		"quiz_category":      1,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["question"])
}

func TestPlayQuizMissingCategoryIs404(t *testing.T) {
	store := newMemoryStore()
	store.seed(3)
	mux := newTestMux(store)

	rec, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
		"previous_questions": []int64{},
		"category":           39201,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, http.StatusNotFound, body["error"])
}

func TestPlayQuizDrainsWithoutRepeats(t *testing.T) {
	store := newMemoryStore()
	store.seed(5, 2)
	mux := newTestMux(store)

	previous := []int64{}
	for i := 0; i < 5; i++ {
		_, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      2,
		})
		question, ok := body["question"].(map[string]interface{})
		require.True(t, ok, fmt.Sprintf("draw %d should return a question", i+1))
		id := int64(question["id"].(float64))
		assert.NotContains(t, previous, id)
		previous = append(previous, id)
	}

	_, body := doRequest(t, mux, http.MethodPost, "/quiz", map[string]interface{}{
		"previous_questions": previous,
		"quiz_category":      2,
	})
	assert.Nil(t, body["question"])
}
