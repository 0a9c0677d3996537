package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

// APIResponse is the envelope of every JSON API response
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *Meta     `json:"meta,omitempty"`
}

// APIError describes why a request failed. Code is derived from the
// HTTP status, e.g. BAD_GATEWAY for 502.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta describes which page of an upstream listing the data is
type Meta struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

// JSON sends data with the given status code
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, APIResponse{Data: data})
}

// JSONWithMeta sends data together with its page metadata
func JSONWithMeta(w http.ResponseWriter, status int, data any, meta *Meta) {
	write(w, status, APIResponse{Data: data, Meta: meta})
}

// Error sends an error envelope whose code is derived from status
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, APIResponse{Error: &APIError{Code: Code(status), Message: message}})
}

// Code turns an HTTP status into its error code: the status text in
// upper snake case.
func Code(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// BadGateway reports a failed request to an upstream API
func BadGateway(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadGateway, message)
}

func write(w http.ResponseWriter, status int, body APIResponse) {
	body.Success = status >= 200 && status < 300

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
