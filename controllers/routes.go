package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	formmiddleware "github.com/blogem/keysubmit/middleware"
)

// NewRouter configures all host routes
func NewRouter(ctrl *Controllers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", ctrl.Page.Index)
	r.With(formmiddleware.RequireFormEncoded).Post("/submit", ctrl.Page.Submit)

	r.Route("/submissions", func(r chi.Router) {
		r.Get("/", ctrl.Submissions.Index)
		r.Get("/summary", ctrl.Submissions.Summary)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "keysubmit"}`)
	})

	return r
}
