package errors

import (
	"encoding/json"
	"net/http"
)

// Client-facing failure messages. Deliberately generic: underlying causes are
// logged server-side and never serialized into a response.
const (
	MsgNotFound      = "Not found"
	MsgUnprocessable = "Unprocessable"
	MsgInternal      = "Internal server error"
)

// ErrorResponse is the uniform failure body. Error carries the HTTP status so
// clients reading only the body can still branch on it.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the standard failure body with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondNotFound writes a 404 failure body.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes a 422 failure body.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// RespondInternalError writes a 500 failure body.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternal)
}
