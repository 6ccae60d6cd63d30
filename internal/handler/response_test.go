package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/service"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, struct {
		Name string `json:"name"`
	}{Name: "Varal"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	// Responses are pretty-printed.
	assert.Equal(t, "{\n  \"name\": \"Varal\"\n}\n", rec.Body.String())
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(rec, "connection refused")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"erro": "Erro interno no servidor."`)
	assert.Contains(t, rec.Body.String(), `"detalhe": "connection refused"`)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com"}`))
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "a@b.com", p.Email)
	})

	t.Run("empty body is the zero value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Empty(t, p.Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var p payload
		assert.ErrorIs(t, DecodeJSON(req, &p), ErrInvalidBody)
	})
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid body", ErrInvalidBody, http.StatusBadRequest, "Corpo inválido ou JSON malformado."},
		{"missing fields", service.ErrMissingFields, http.StatusBadRequest, "Campos obrigatórios faltando."},
		{"no letters", service.ErrNoLetters, http.StatusBadRequest, "Dados inválidos. Envie e-mail e cartinhas."},
		{"letter not found", service.ErrLetterNotFound, http.StatusBadRequest, "Cartinha não encontrada ou indisponível."},
		{"letter unavailable", service.ErrLetterUnavailable, http.StatusBadRequest, "Cartinha não encontrada ou indisponível."},
		{"duplicate email", service.ErrEmailAlreadyExists, http.StatusConflict, "E-mail já cadastrado."},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Senha incorreta."},
		{"donor not found", service.ErrDonorNotFound, http.StatusNotFound, "Usuário não encontrado."},
		{"store miss", database.ErrNotFound, http.StatusNotFound, "Registro não encontrado."},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "Erro interno no servidor."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapServiceErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), service.ErrLetterUnavailable)
	status, _ := MapServiceError(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
}
