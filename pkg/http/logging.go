package http

import (
	"net/http"
	"slices"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

type loggingResponseWriter struct {
	http.ResponseWriter
	code int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(excludedPaths, r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			lrw := &loggingResponseWriter{w, http.StatusOK}
			handler.ServeHTTP(lrw, r)

			meta := getHandlerMetadata(r.Context())
			l := logger.With(log.Fields{
				"httpHandler": log.Fields{
					"routeName": getRouteName(r.Method, r.URL.Path),
					"method":    r.Method,
					"path":      r.URL.Path,
					"code":      lrw.code,
				},
			})
			if meta.Panic != nil {
				l.WithField("panic", log.Fields{
					"message":    meta.Panic.Message,
					"stacktrace": string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "request handled with panic")
				return
			}
			if meta.Error != nil {
				l = l.WithError(meta.Error)
			}
			if lrw.code >= http.StatusInternalServerError {
				l.Log(r.Context(), errorLevel, "request handled with internal error")
				return
			}

			l.Log(r.Context(), infoLevel, "request handled")
		})
	})
}
