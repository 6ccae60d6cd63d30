package handler

import (
	"net/http"

	"github.com/varaldossonhos/api/internal/service"
)

// CatalogHandler serves the read-only listings.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Events handles GET /events.
func (h *CatalogHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.catalog.FeaturedEvents(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

// Letters handles GET /letters.
func (h *CatalogHandler) Letters(w http.ResponseWriter, r *http.Request) {
	letters, err := h.catalog.AvailableLetters(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, letters)
}

// CollectionPoints handles GET /collection-points.
func (h *CatalogHandler) CollectionPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.catalog.CollectionPoints(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, points)
}
