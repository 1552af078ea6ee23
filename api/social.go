package api

import (
	"net/http"
)

func (h *handler) socialPNG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeCard(w, "image/png", h.cards.PNG(r.Context(), q.Get("eventId"), q.Get("attendeeId")))
}

func (h *handler) socialSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeCard(w, "image/svg+xml", h.cards.SVG(r.Context(), q.Get("eventId"), q.Get("attendeeId")))
}

func (h *handler) writeCard(w http.ResponseWriter, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
