package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
	"github.com/SachinthaLakshan/evite-new-edition/session"
	"github.com/SachinthaLakshan/evite-new-edition/socialcard"
	"github.com/SachinthaLakshan/evite-new-edition/store"
)

func RegisterRoutes(manager *session.Manager, st store.Store, cards *socialcard.Generator, cat *catalog.Catalog, log *zap.Logger, staticFS fs.FS) http.Handler {
	if cat == nil {
		cat = catalog.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{manager: manager, store: st, cards: cards, cat: cat, log: log}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Catalog
	r.Get("/api/templates", h.listTemplates)
	r.Get("/api/fonts", h.listFonts)
	r.Get("/api/guest-name-positions", h.listGuestNamePositions)

	// Editing sessions
	r.Get("/api/sessions", h.listSessions)
	r.Post("/api/sessions", h.createSession)
	r.Delete("/api/sessions/{id}", h.closeSession)
	r.Get("/api/sessions/{id}/config", h.sessionConfig)
	r.Post("/api/sessions/{id}/updates", h.applyUpdate)
	r.Get("/api/sessions/{id}/preview.svg", h.sessionPreview)

	// WebSocket
	r.Get("/api/sessions/{id}/ws", h.handleWS)

	// Events and guests
	r.Get("/api/events/{id}", h.getEvent)
	r.Put("/api/events/{id}", h.putEvent)
	r.Get("/api/events/{id}/invitation", h.getInvitation)
	r.Put("/api/events/{id}/invitation", h.putInvitation)
	r.Put("/api/events/{id}/attendees/{attendeeId}", h.putAttendee)
	r.Get("/api/events/{id}/card.svg", h.eventCard)

	// Social preview cards
	r.Get("/og", h.socialPNG)
	r.Get("/og.svg", h.socialSVG)

	// Static sub-FS: strip the "static/" prefix present in the embed.FS.
	// Probe index.html in case staticFS is already rooted at the assets.
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		staticSub = staticFS
	} else if _, statErr := fs.Stat(staticSub, "index.html"); statErr != nil {
		staticSub = staticFS
	}

	// Reading the page directly avoids http.FileServer's redirect of
	// paths ending in "index.html" to "./".
	r.Get("/", serveFile(staticSub, "index.html"))
	r.Get("/session/{id}", serveFile(staticSub, "index.html"))

	fileServer := http.FileServer(http.FS(staticSub))
	r.Get("/css/*", fileServer.ServeHTTP)
	r.Get("/js/*", fileServer.ServeHTTP)

	return r
}

// serveFile returns a handler that reads a single file from fsys and sends it.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

type handler struct {
	manager *session.Manager
	store   store.Store
	cards   *socialcard.Generator
	cat     *catalog.Catalog
	log     *zap.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// storeError maps a storage error to a response.
func (h *handler) storeError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, what+" not found", http.StatusNotFound)
		return
	}
	h.log.Error("store request failed", zap.String("what", what), zap.Error(err))
	http.Error(w, "storage error", http.StatusInternalServerError)
}
