package http

import (
	"encoding/json"
	"net/http"
)

const HealthPath = "/healthz"

func WithHealthCheck() ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(s *server) {
		s.router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}
