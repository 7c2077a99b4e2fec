package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetState)
	r.Post("/topic", h.SubmitTopic)
	r.Put("/module-name", h.EditModuleName)
	r.Put("/fields", h.UpdateFields)
	r.Post("/save", h.Save)
	return r
}
