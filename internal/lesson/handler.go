package lesson

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Mahitha-23/ClassPilot/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	l, err := h.service.GenerateLesson(r.Context(), req.Topic)
	if err != nil {
		log.WithError(err).Error("Failed to generate lesson")
		http.Error(w, "failed to generate lesson", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, l)
}

func (h *Handler) GenerateModuleLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		ModuleName string `json:"moduleName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ModuleName) == "" {
		http.Error(w, "moduleName is required", http.StatusBadRequest)
		return
	}

	l, err := h.service.GenerateModuleLesson(r.Context(), req.ModuleName)
	if err != nil {
		log.WithError(err).Error("Failed to generate lesson from module name")
		http.Error(w, "failed to generate lesson from module name", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, l)
}

func (h *Handler) SuggestModuleMetadata(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	m, err := h.service.SuggestModuleMetadata(r.Context(), req.Topic)
	if err != nil {
		log.WithError(err).Error("Failed to generate module suggestions")
		http.Error(w, "failed to generate module suggestions", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, m)
}
