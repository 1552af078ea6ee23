package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/SachinthaLakshan/evite-new-edition/invitation"
	"github.com/SachinthaLakshan/evite-new-edition/render"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

func (h *handler) getEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, err, "event")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// putEvent creates or replaces an event. An included invitation_config is
// normalized before it is stored.
func (h *handler) putEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var ev store.Event
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&ev); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ev.ID = id
	if ev.Invitation != nil {
		if h.editing(w, id) {
			return
		}
		cfg := invitation.Normalize(h.cat, *ev.Invitation)
		ev.Invitation = &cfg
	}
	saved, err := h.store.PutEvent(r.Context(), ev)
	if err != nil {
		h.storeError(w, err, "event")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// editing rejects direct invitation writes while a session owns the event.
func (h *handler) editing(w http.ResponseWriter, eventID string) bool {
	if _, busy := h.manager.ForEvent(eventID); busy {
		http.Error(w, "event has an open editing session", http.StatusConflict)
		return true
	}
	return false
}

// invitationOf returns the live configuration of an open session, the
// stored one, or the bootstrap default.
func (h *handler) invitationOf(ev store.Event) invitation.Config {
	if s, ok := h.manager.ForEvent(ev.ID); ok {
		return s.Config()
	}
	if ev.Invitation != nil {
		return *ev.Invitation
	}
	return invitation.Bootstrap()
}

func (h *handler) getInvitation(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, err, "event")
		return
	}
	writeJSON(w, http.StatusOK, h.invitationOf(ev))
}

func (h *handler) putInvitation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var cfg invitation.Config
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if h.editing(w, id) {
		return
	}
	cfg = invitation.Normalize(h.cat, cfg)
	if err := h.store.SaveInvitation(r.Context(), id, cfg); err != nil {
		h.storeError(w, err, "event")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *handler) putAttendee(w http.ResponseWriter, r *http.Request) {
	var a store.Attendee
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&a); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	a.ID = chi.URLParam(r, "attendeeId")
	a.EventID = chi.URLParam(r, "id")
	saved, err := h.store.PutAttendee(r.Context(), a)
	if err != nil {
		h.storeError(w, err, "event")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// eventCard renders the personalized invitation of one guest. The guest is
// taken from ?guest= or, failing that, the attendee named by ?attendeeId=.
func (h *handler) eventCard(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, err, "event")
		return
	}
	guest := strings.TrimSpace(r.URL.Query().Get("guest"))
	if attendeeID := r.URL.Query().Get("attendeeId"); guest == "" && attendeeID != "" {
		if a, err := h.store.GetAttendee(r.Context(), attendeeID); err == nil && a.EventID == ev.ID {
			guest = a.Name
		}
	}
	facts := render.EventFacts{Title: ev.Title, Date: ev.Date, Location: ev.Location}
	writeSVG(w, h.log, render.Render(h.cat, h.invitationOf(ev), guest, facts, render.Static))
}
