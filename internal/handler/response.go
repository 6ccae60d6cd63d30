package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrInvalidBody signals an unparseable request body. Handlers translate it to
// the fixed 400 envelope; it never escapes the package boundary as a response
// detail.
var ErrInvalidBody = errors.New("invalid request body")

// errorBody is the uniform error envelope. Detalhe is only populated for
// internal errors.
type errorBody struct {
	Erro    string `json:"erro"`
	Detalhe string `json:"detalhe,omitempty"`
}

// WriteJSON writes a pretty-printed JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// WriteError writes the uniform error envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorBody{Erro: message})
}

// WriteInternalError writes the 500 envelope with a best-effort detail string.
func WriteInternalError(w http.ResponseWriter, detail string) {
	WriteJSON(w, http.StatusInternalServerError, errorBody{
		Erro:    "Erro interno no servidor.",
		Detalhe: detail,
	})
}

// DecodeJSON buffers and decodes a JSON request body into v. An empty body
// decodes to the zero value; a malformed one returns ErrInvalidBody.
func DecodeJSON(r *http.Request, v interface{}) error {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrInvalidBody
	}
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return ErrInvalidBody
	}
	return nil
}
