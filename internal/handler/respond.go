// Package handler provides the JSON response envelope shared by the
// API handlers. Every response carries a success boolean; failures
// carry a stable code/message pair and never leak internal errors.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tatacoa/vitrina/internal/domain"
)

// Wire error codes expected by the existing storefront consumers.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeFetchError = "FETCH_ERROR"
	CodeInvalidID  = "INVALID_ID"
)

// ErrorBody is the error payload of a failed envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool             `json:"success"`
	Data    interface{}      `json:"data,omitempty"`
	Meta    *domain.PageMeta `json:"meta,omitempty"`
	Error   *ErrorBody       `json:"error,omitempty"`
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// OKPage writes a success envelope with pagination metadata.
func OKPage(w http.ResponseWriter, data interface{}, meta domain.PageMeta) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Meta: &meta})
}

// Error converts a domain error into the failure envelope. The
// underlying error is logged with its operation; the client only sees
// the stable code and the user-facing message.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	code := domain.ErrorCode(err)
	status := errorCodeToHTTPStatus(code)

	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request failed", attrs...)
	}

	writeJSON(w, status, envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    errorCodeToWireCode(code),
			Message: domain.ErrorMessage(err),
		},
	})
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

// errorCodeToWireCode maps domain error codes to the envelope codes
// the storefront already depends on.
func errorCodeToWireCode(code string) string {
	switch code {
	case domain.EINVALID:
		return CodeInvalidID
	case domain.ENOTFOUND:
		return CodeNotFound
	default:
		return CodeFetchError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
