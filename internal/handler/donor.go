package handler

import (
	"net/http"

	"github.com/varaldossonhos/api/internal/model"
	"github.com/varaldossonhos/api/internal/service"
)

// DonorHandler handles donor registration and login.
type DonorHandler struct {
	donors *service.DonorService
}

// NewDonorHandler creates a new donor handler.
func NewDonorHandler(donors *service.DonorService) *DonorHandler {
	return &DonorHandler{donors: donors}
}

// RegisterRequest represents the register endpoint request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
}

// LoginRequest represents the login endpoint request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	donor, err := h.donors.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		City:     req.City,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}{Success: true, ID: donor.ID})
}

// Login handles POST /login.
func (h *DonorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}

	donor, err := h.donors.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Success bool         `json:"success"`
		Donor   *model.Donor `json:"donor"`
	}{Success: true, Donor: donor})
}
