package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health returns a liveness handler that pings the record store.
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, struct {
				Status string `json:"status"`
			}{Status: "degraded"})
			return
		}
		WriteJSON(w, http.StatusOK, struct {
			Status string `json:"status"`
		}{Status: "ok"})
	}
}
