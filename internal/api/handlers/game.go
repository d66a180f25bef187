package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/Harshitk-cp/wolfmind/internal/service"
	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GameHandler struct {
	svc *service.GameService
}

func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

type createGameRequest struct {
	Info    *domain.GameInfo    `json:"info"`
	Setting *domain.GameSetting `json:"setting"`
}

type createGameResponse struct {
	ID   uuid.UUID   `json:"id"`
	Role domain.Role `json:"role"`
}

// turnRequest carries an optional fresher snapshot with a callback.
type turnRequest struct {
	Info *domain.GameInfo `json:"info"`
}

type statementResponse struct {
	Statement domain.Statement `json:"statement"`
}

type targetResponse struct {
	Target domain.Agent `json:"target"`
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Info == nil {
		writeError(w, http.StatusBadRequest, "info is required")
		return
	}

	id, role, err := h.svc.Create(req.Info, req.Setting)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGame) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}

	writeJSON(w, http.StatusCreated, createGameResponse{ID: id, Role: role})
}

func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, h.svc.Update)
}

func (h *GameHandler) DayStart(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, h.svc.DayStart)
}

func (h *GameHandler) Talk(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.turn(w, r)
	if !ok {
		return
	}
	st, err := h.svc.Talk(id, req.Info)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statementResponse{Statement: st})
}

func (h *GameHandler) Whisper(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.turn(w, r)
	if !ok {
		return
	}
	st, err := h.svc.Whisper(id, req.Info)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statementResponse{Statement: st})
}

func (h *GameHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.turn(w, r)
	if !ok {
		return
	}
	target, err := h.svc.Vote(id, req.Info)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, targetResponse{Target: target})
}

func (h *GameHandler) Divine(w http.ResponseWriter, r *http.Request) {
	h.night(w, r, strategy.ActionDivine)
}

func (h *GameHandler) Guard(w http.ResponseWriter, r *http.Request) {
	h.night(w, r, strategy.ActionGuard)
}

func (h *GameHandler) Attack(w http.ResponseWriter, r *http.Request) {
	h.night(w, r, strategy.ActionAttack)
}

func (h *GameHandler) Beliefs(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	snap, err := h.svc.Beliefs(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Finish(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) night(w http.ResponseWriter, r *http.Request, action strategy.Action) {
	id, req, ok := h.turn(w, r)
	if !ok {
		return
	}
	target, err := h.svc.NightAction(id, req.Info, action)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, targetResponse{Target: target})
}

func (h *GameHandler) ingest(w http.ResponseWriter, r *http.Request, apply func(uuid.UUID, *domain.GameInfo) error) {
	id, req, ok := h.turn(w, r)
	if !ok {
		return
	}
	if req.Info == nil {
		writeError(w, http.StatusBadRequest, "info is required")
		return
	}
	if err := apply(id, req.Info); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) turn(w http.ResponseWriter, r *http.Request) (uuid.UUID, turnRequest, bool) {
	var req turnRequest
	id, ok := gameID(w, r)
	if !ok {
		return id, req, false
	}
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return id, req, false
	}
	return id, req, true
}

func gameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, strategy.ErrUnsupportedAction):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
