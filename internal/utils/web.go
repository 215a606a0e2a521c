package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

// WriteError maps the domain error taxonomy to HTTP status codes:
// validation (translated) -> 400, not found -> 404, authorization -> 403,
// ErrorWithStatusCode -> as declared, anything else -> 500.
func WriteError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		http.Error(w, errors.Translate(e.Code), http.StatusBadRequest)
	case *errors.NotFoundError:
		http.Error(w, e.Message, http.StatusNotFound)
	case *errors.AuthorizationError:
		http.Error(w, e.Message, http.StatusForbidden)
	case *errors.ErrorWithStatusCode:
		http.Error(w, e.Message, e.StatusCode)
	default:
		logger.Log.Error("unhandled error", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Decode parses a JSON request body into dst.
func Decode(r io.ReadCloser, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		logger.Log.Debug("invalid request body", "err", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
