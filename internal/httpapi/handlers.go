package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/types"
)

// SeatStates dumps the current seat map, same shape as the SeatStates
// frame sent over the websocket.
func SeatStates(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.SeatStates(st.Snapshot()))
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
