package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorBodyFunc builds a JSON body for a failed request.
type ErrorBodyFunc func(httpCode int, err error) any

type errorMapping struct {
	code int
	errs []error
}

func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	return func(s *server) {
		for code, errs := range statusCodes {
			s.errorMapping = append(s.errorMapping, errorMapping{code: code, errs: errs})
		}
	}
}

func WithErrorBody(fn ErrorBodyFunc) ServerOption {
	return func(s *server) {
		s.errorBody = fn
	}
}

func statusCodeForError(ctx context.Context, err error) int {
	for _, mapping := range getHandlerMetadata(ctx).errorMapping {
		for _, target := range mapping.errs {
			if errors.Is(err, target) {
				return mapping.code
			}
		}
	}

	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeHandlerError(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if meta.errorBody == nil {
		w.WriteHeader(httpCode)
		return
	}

	body, encodeErr := json.Marshal(meta.errorBody(httpCode, err))
	if encodeErr != nil {
		w.WriteHeader(httpCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(body)
}
