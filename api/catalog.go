package api

import (
	"net/http"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
)

func (h *handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.List())
}

func (h *handler) listFonts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Fonts())
}

func (h *handler) listGuestNamePositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.GuestNamePositions())
}
