// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

// WriteValidation writes a 400 carrying per-field messages.
func WriteValidation(w http.ResponseWriter, msg string, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, errorBody{Error: msg, Fields: fields})
}

// BadRequest writes a 400.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, msg)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusNotFound, msg)
}

// Conflict writes a 409.
func Conflict(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusConflict, msg)
}

// ErrorLogger logs server-side failures with request context and answers the
// client with a generic message, so storage details never leak.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err under msg and writes a 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string, fields ...zap.Field) {
	fields = append(fields,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	e.log.Error(msg, fields...)

	if userMsg == "" {
		userMsg = "An internal error occurred."
	}
	WriteError(w, http.StatusInternalServerError, userMsg)
}

// NotFoundHandler answers unknown routes with JSON.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	NotFound(w, "Not found")
}

// MethodNotAllowedHandler answers known routes hit with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
