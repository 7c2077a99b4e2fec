package module

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Mahitha-23/ClassPilot/internal/config"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) SaveModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var m Module
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(m.ModuleName) == "" {
		http.Error(w, "moduleName is required", http.StatusBadRequest)
		return
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := h.store.Append(r.Context(), &m); err != nil {
		log.WithError(err).Error("Failed to save module")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	modules, err := h.store.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list modules")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if modules == nil {
		modules = []*Module{}
	}

	config.JSON(w, http.StatusOK, modules)
}
