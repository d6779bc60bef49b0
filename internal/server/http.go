package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"selector-grader/config"
)

func NewHTTPServer(cfg *config.Config, mux *chi.Mux) *http.Server {
	// Grading a URL waits on the upstream fetch, so writes get the fetch budget on top.
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
