// Package api exposes an open deck session over HTTP using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jacksmith/deck/internal/ops"
)

// NewRouter creates a chi router serving sess.
// The session serializes concurrent requests.
func NewRouter(sess *ops.Session) chi.Router {
	h := NewHandler(sess)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/deck", h.GetDeck)

	// Cards.
	r.Get("/cards", h.ListCards)
	r.Post("/cards", h.AddCard)
	r.Put("/cards/{index}", h.RenameCard)
	r.Delete("/cards/{index}", h.DeleteCard)

	r.Post("/import", h.Import)
	r.Post("/save", h.Save)

	return r
}
