package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

var (
	once    sync.Once
	handler http.HandlerFunc
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitFromConfig(cfg)

		handler = di.InitializeService().Adaptor()
	})

	r.RequestURI = r.URL.String()

	handler(w, r)
}
