package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/render"
	"github.com/SachinthaLakshan/evite-new-edition/session"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

// maxBody bounds JSON request bodies.
const maxBody = 1 << 20

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.manager.List()
	infos := make([]session.Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	writeJSON(w, http.StatusOK, infos)
}

func (h *handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID   string `json:"event_id"`
		GuestName string `json:"guest_name"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil || strings.TrimSpace(req.EventID) == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.Create(r.Context(), strings.TrimSpace(req.EventID))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEventBusy):
			http.Error(w, "event already has an editing session", http.StatusConflict)
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, "event not found", http.StatusNotFound)
		default:
			h.log.Error("create session failed", zap.String("event_id", req.EventID), zap.Error(err))
			http.Error(w, "failed to create session", http.StatusInternalServerError)
		}
		return
	}
	if req.GuestName != "" {
		s.SetGuestName(req.GuestName)
	}
	writeJSON(w, http.StatusCreated, s.Info())
}

func (h *handler) closeSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.manager.Close(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to close session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := h.manager.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
	}
	return s, ok
}

func (h *handler) sessionConfig(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Config())
}

// applyUpdate runs one configuration update, the REST counterpart of the
// websocket "update" message.
func (h *handler) applyUpdate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	u, err := invitation.DecodeUpdate(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.Apply(u))
}

func (h *handler) sessionPreview(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if guest, set := r.URL.Query()["guest"]; set {
		writeSVG(w, h.log, s.PreviewAs(guest[0]))
		return
	}
	writeSVG(w, h.log, s.Preview())
}

func writeSVG(w http.ResponseWriter, log *zap.Logger, s *render.Surface) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.WriteSVG(w, s); err != nil {
		log.Warn("svg write failed", zap.Error(err))
	}
}
