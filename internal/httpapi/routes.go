package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/ws"
)

func SetupRoutes(st *store.Store, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/healthz", Healthz)
	r.Get("/seats", SeatStates(st))
	r.Get("/ws", ws.Handler(st, log))
	return r
}
