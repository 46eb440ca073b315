package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}
)

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) write(ctx context.Context, err error) {
	if err != nil {
		writeHandlerError(ctx, w.impl, statusCodeForError(ctx, err), err)
		return
	}

	var body []byte
	if w.hasBody {
		body, err = json.Marshal(w.body)
		if err != nil {
			writeHandlerError(ctx, w.impl, http.StatusInternalServerError, fmt.Errorf("encode body: %w", err))
			return
		}
		w.impl.Header().Set("Content-Type", "application/json")
	}

	getHandlerMetadata(ctx).Code = w.httpCode
	w.impl.WriteHeader(w.httpCode)
	if body != nil {
		_, _ = w.impl.Write(body)
	}
}

func (w *responseWriter) writePanic(ctx context.Context, p Panic) {
	getHandlerMetadata(ctx).Panic = &p
	writeHandlerError(ctx, w.impl, http.StatusInternalServerError, fmt.Errorf("panic: %s", p.Message))
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.writePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.write(r.Context(), err)
	}
}
