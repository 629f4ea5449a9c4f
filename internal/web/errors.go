package web

// errors.go provides unified error response handling for the web layer.
//
// Technical errors are logged with full detail and the request ID for
// correlation; clients get a user-friendly message with a support code and,
// where one exists, a suggested action. The response format follows the
// request: JSON for API clients, an HTML fragment for partial requests,
// plain HTML otherwise.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/M4yank09/AI-cet/internal/source"
	"github.com/M4yank09/AI-cet/internal/web/templates"
	"github.com/go-chi/chi/v5/middleware"
)

// UserMessage is the client-facing rendering of an error.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// mapError converts a technical error into a user-facing message.
func mapError(err error) UserMessage {
	switch {
	case errors.Is(err, source.ErrExhausted):
		return UserMessage{
			Code:    "SRC001",
			Message: "The cutoff dataset could not be loaded from any source.",
			Action:  "Retry loading the dataset in a few moments.",
		}
	case errors.Is(err, cutoff.ErrNotLoaded):
		return UserMessage{
			Code:    "DATA001",
			Message: "The cutoff dataset is not loaded yet.",
			Action:  "Retry loading the dataset.",
		}
	case strings.Contains(err.Error(), "decode cutoff dataset"):
		return UserMessage{
			Code:    "SRC002",
			Message: "A data source returned a malformed dataset.",
			Action:  "Retry loading the dataset; the next source may succeed.",
		}
	default:
		return UserMessage{
			Code:    "ERR000",
			Message: "Something went wrong.",
			Action:  "Please try again.",
		}
	}
}

// respondError logs the technical error and writes the user-facing response
// in the format the client asked for.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := mapError(err)

	requestID := middleware.GetReqID(r.Context())
	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", requestID,
	)

	if isPartial(r) {
		s.renderErrorPartial(w, r, userMsg, statusCode)
	} else if wantsJSON(r) {
		respondErrorJSON(w, userMsg, statusCode)
	} else {
		respondErrorHTML(w, userMsg, statusCode)
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// respondErrorHTML writes a plain HTML error response.
func respondErrorHTML(w http.ResponseWriter, msg UserMessage, statusCode int) {
	http.Error(w, msg.Message+" ("+msg.Code+")", statusCode)
}

// renderErrorPartial renders the error fragment swapped into the table
// area, including the retry affordance.
func (s *Server) renderErrorPartial(w http.ResponseWriter, r *http.Request, msg UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
}

// isPartial checks if the request targets an HTML fragment endpoint.
func isPartial(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/partials/")
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
