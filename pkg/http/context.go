package http

import (
	"context"
	"net/http"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code  int
	Panic *Panic
	Error error

	errorMapping []errorMapping
	errorBody    ErrorBodyFunc
}

func (s *server) withHandlerMetadata(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{
			errorMapping: s.errorMapping,
			errorBody:    s.errorBody,
		})
		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}
