package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateLesson)
	r.Post("/module-lesson", h.GenerateModuleLesson)
	r.Post("/module-suggestions", h.SuggestModuleMetadata)
	return r
}
