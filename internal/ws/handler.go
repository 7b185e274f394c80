package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/teatrolive/seating-backend/internal/finder"
	"github.com/teatrolive/seating-backend/internal/session"
	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/types"
	"github.com/teatrolive/seating-backend/internal/venue"
)

const writeTimeout = 3 * time.Second

// Handler upgrades the connection and runs one session over it. The
// protocol is strictly request/response, so replies are written inline
// from the read loop. The deferred session close is what guarantees
// held seats go back to free when a client vanishes mid-decision.
func Handler(st *store.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		id := randID(6)
		slog := log.With(zap.String("session", id))
		sess := session.New(id, st, slog)
		defer sess.Close()

		ctx := r.Context()
		slog.Info("client connected")

		// Full seat state goes out first so the client can render the map.
		send(ctx, conn, types.ServerMessage{
			Type:  types.MsgSeatStates,
			Seats: types.SeatStates(st.Snapshot()),
		})

		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					slog.Info("client disconnected")
				default:
					slog.Info("connection dropped", zap.Error(err))
				}
				return
			}

			text := strings.TrimSpace(string(data))

			// Legacy clients send the choice as a bare integer frame.
			if choice, convErr := strconv.Atoi(text); convErr == nil {
				handleChoice(ctx, conn, sess, choice)
				continue
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				slog.Warn("malformed message", zap.String("payload", text))
				sendError(ctx, conn, "bad json")
				continue
			}

			switch cm.Type {
			case types.MsgChoice:
				handleChoice(ctx, conn, sess, cm.Choice)
			case types.MsgPaymentResult:
				handlePayment(ctx, conn, st, sess, cm)
			default:
				if cm.SeatCount > 0 {
					handleRequest(ctx, conn, sess, cm)
					continue
				}
				sendError(ctx, conn, "unknown type")
			}
		}
	}
}

func handleRequest(ctx context.Context, conn *websocket.Conn, sess *session.Session, cm types.ClientMessage) {
	scope, ok := parseScope(cm.Category)
	if !ok {
		sendError(ctx, conn, "unknown category")
		return
	}

	sugs, err := sess.Request(cm.SeatCount, scope)
	if err != nil {
		sendError(ctx, conn, err.Error())
		return
	}
	if len(sugs) == 0 {
		send(ctx, conn, types.ServerMessage{Type: types.MsgUnavailable})
		return
	}
	send(ctx, conn, types.ServerMessage{
		Type:        types.MsgSuggestions,
		Suggestions: types.Suggestions(sugs),
	})
}

func handleChoice(ctx context.Context, conn *websocket.Conn, sess *session.Session, choice int) {
	dec, err := sess.Choose(choice)
	if err != nil {
		sendError(ctx, conn, err.Error())
		return
	}
	if dec.Accepted {
		send(ctx, conn, types.ServerMessage{Type: types.MsgAccepted, Choice: dec.Choice})
		return
	}
	send(ctx, conn, types.ServerMessage{Type: types.MsgDeclined})
}

func handlePayment(ctx context.Context, conn *websocket.Conn, st *store.Store, sess *session.Session, cm types.ClientMessage) {
	keys, ok := types.SeatKeys(cm.Seats)
	if !ok {
		sendError(ctx, conn, "unknown section")
		return
	}
	if err := sess.PaymentResult(cm.Success, keys); err != nil {
		sendError(ctx, conn, err.Error())
		return
	}
	if cm.Success {
		// Booked seats changed the map; push the fresh state.
		send(ctx, conn, types.ServerMessage{
			Type:  types.MsgSeatStates,
			Seats: types.SeatStates(st.Snapshot()),
		})
		send(ctx, conn, types.ServerMessage{Type: types.MsgPaymentOK})
		return
	}
	send(ctx, conn, types.ServerMessage{Type: types.MsgPaymentFailed})
}

// parseScope maps the request's category field onto a search scope: a
// category name, a single section name, or anything/empty for the whole
// venue.
func parseScope(category string) (finder.Scope, bool) {
	if cat := venue.Category(category); cat.Valid() {
		return finder.CategoryScope(cat), true
	}
	if section := venue.Section(category); section.Valid() {
		return finder.SectionScope(section), true
	}
	switch strings.ToLower(category) {
	case "", "any", "anywhere":
		return finder.AnywhereScope(), true
	}
	return finder.Scope{}, false
}

func send(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}

func sendError(ctx context.Context, conn *websocket.Conn, reason string) {
	send(ctx, conn, types.ServerMessage{Type: types.MsgError, Error: reason})
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
