package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mahitha-23/ClassPilot/internal/config"
)

type Handler struct {
	session *Session
}

func NewHandler(s *Session) *Handler {
	return &Handler{session: s}
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) SubmitTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.session.SubmitTopic(r.Context(), req.Topic)
	switch {
	case errors.Is(err, ErrEmptyTopic):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		log.WithError(err).Error("Failed to generate lesson")
		http.Error(w, "failed to generate lesson", http.StatusInternalServerError)
	default:
		config.JSON(w, http.StatusOK, h.session.Snapshot())
	}
}

func (h *Handler) EditModuleName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ModuleName string `json:"moduleName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.session.EditModuleName(req.ModuleName)
	config.JSON(w, http.StatusAccepted, h.session.Snapshot())
}

func (h *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty    *string `json:"difficulty"`
		Prerequisites *string `json:"prerequisites"`
		EstimatedTime *string `json:"estimatedTime"`
		Description   *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Difficulty != nil {
		h.session.SetDifficulty(*req.Difficulty)
	}
	if req.Prerequisites != nil {
		h.session.SetPrerequisites(*req.Prerequisites)
	}
	if req.EstimatedTime != nil {
		h.session.SetEstimatedTime(*req.EstimatedTime)
	}
	if req.Description != nil {
		h.session.SetDescription(*req.Description)
	}

	config.JSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	m, err := h.session.Save(r.Context())
	switch {
	case errors.Is(err, ErrNoLesson), errors.Is(err, ErrNoModuleName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		log.WithError(err).Error("Failed to save module")
		http.Error(w, "failed to save module", http.StatusInternalServerError)
	default:
		config.JSON(w, http.StatusCreated, m)
	}
}
