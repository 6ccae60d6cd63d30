package handler

import (
	"net/http"

	"github.com/varaldossonhos/api/internal/service"
)

// AdoptionHandler handles adoption creation and status updates.
type AdoptionHandler struct {
	adoptions *service.AdoptionService
}

// NewAdoptionHandler creates a new adoption handler.
func NewAdoptionHandler(adoptions *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions}
}

// AdoptLetterRef is one letter inside an adoption request. The legacy field
// spellings are accepted alongside the current ones; coalescing happens here
// so the service sees a single shape.
type AdoptLetterRef struct {
	ID              string `json:"id"`
	LegacyID        string `json:"id_cartinha"`
	CollectionPoint string `json:"collectionPoint"`
	LegacyPoint     string `json:"ponto_coleta"`
}

// AdoptRequest represents the adopt endpoint request body.
type AdoptRequest struct {
	DonorEmail string           `json:"donorEmail"`
	Letters    []AdoptLetterRef `json:"letters"`
}

// UpdateStatusRequest represents the update-status endpoint request body.
type UpdateStatusRequest struct {
	DonationID string `json:"donationId"`
	NewStatus  string `json:"newStatus"`
	DonorEmail string `json:"donorEmail"`
	DonorName  string `json:"donorName"`
}

// Adopt handles POST /adopt.
func (h *AdoptionHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	var req AdoptRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	refs := make([]service.LetterRef, 0, len(req.Letters))
	for _, l := range req.Letters {
		id := l.ID
		if id == "" {
			id = l.LegacyID
		}
		point := l.CollectionPoint
		if point == "" {
			point = l.LegacyPoint
		}
		refs = append(refs, service.LetterRef{ID: id, CollectionPoint: point})
	}

	if _, err := h.adoptions.Adopt(r.Context(), service.AdoptRequest{
		DonorEmail: req.DonorEmail,
		Letters:    refs,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: true, Message: "Adoções registradas com sucesso!"})
}

// UpdateStatus handles POST /update-status.
func (h *AdoptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	if _, err := h.adoptions.UpdateStatus(r.Context(), service.UpdateStatusRequest{
		DonationID: req.DonationID,
		NewStatus:  req.NewStatus,
		DonorEmail: req.DonorEmail,
		DonorName:  req.DonorName,
	}); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}
