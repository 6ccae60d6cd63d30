package handler

import (
	"errors"
	"net/http"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/service"
)

// MapServiceError converts a service error to an HTTP status and the
// user-facing envelope message. This centralizes error handling for all
// handlers, keeping status codes and messages consistent across the API.
func MapServiceError(err error) (int, string) {
	switch {
	// ===== Invalid Input → 400 =====
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, "Corpo inválido ou JSON malformado."
	case errors.Is(err, service.ErrMissingFields):
		return http.StatusBadRequest, "Campos obrigatórios faltando."
	case errors.Is(err, service.ErrNoLetters):
		return http.StatusBadRequest, "Dados inválidos. Envie e-mail e cartinhas."
	case errors.Is(err, service.ErrLetterNotFound),
		errors.Is(err, service.ErrLetterUnavailable):
		return http.StatusBadRequest, "Cartinha não encontrada ou indisponível."

	// ===== Conflict → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return http.StatusConflict, "E-mail já cadastrado."

	// ===== Unauthorized → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Senha incorreta."

	// ===== Not Found → 404 (domain lookups, distinct from routing 404) =====
	case errors.Is(err, service.ErrDonorNotFound):
		return http.StatusNotFound, "Usuário não encontrado."
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Registro não encontrado."

	// ===== Upstream / unexpected → 500 =====
	default:
		return http.StatusInternalServerError, "Erro interno no servidor."
	}
}

// writeServiceError maps err and writes the envelope, including the detail
// field for internal errors.
func writeServiceError(w http.ResponseWriter, err error) {
	status, message := MapServiceError(err)
	if status == http.StatusInternalServerError {
		WriteInternalError(w, err.Error())
		return
	}
	WriteError(w, status, message)
}
