package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"loveacts-service/internal/domain/apperr"

	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into v, answering 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  apperr.CodeInvalidInput,
			Detail: "invalid request body",
		})
		return false
	}
	return true
}

// statusFor maps an error kind to an HTTP status. Conflicts are reported as
// 400 to keep the responses mobile clients already handle.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError converts service errors to HTTP errors
func handleServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	status := statusFor(apperr.KindOf(err))

	detail := "internal server error"
	var appErr *apperr.Error
	if status != http.StatusInternalServerError && errors.As(err, &appErr) {
		detail = appErr.Message
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}

	writeJSON(w, status, errorResponse{
		Error:  apperr.CodeOf(err),
		Detail: detail,
	})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
