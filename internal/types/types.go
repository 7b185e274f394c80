// Package types defines the JSON wire messages exchanged with clients
// and the conversions from domain values to them.
package types

import (
	"github.com/teatrolive/seating-backend/internal/finder"
	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/venue"
)

// Client message types. A seat request carries no type field (legacy
// shape); a bare integer text frame is also accepted as a choice.
const (
	MsgChoice        = "choice"
	MsgPaymentResult = "payment_result"
)

// Server message types.
const (
	MsgSeatStates    = "SeatStates"
	MsgSuggestions   = "Suggestions"
	MsgUnavailable   = "Unavailable"
	MsgAccepted      = "Accepted"
	MsgDeclined      = "Declined"
	MsgPaymentOK     = "PaymentAccepted"
	MsgPaymentFailed = "PaymentFailed"
	MsgError         = "Error"
)

type ClientMessage struct {
	Type      string    `json:"type,omitempty"`
	Category  string    `json:"category,omitempty"`
	SeatCount int       `json:"seat_count,omitempty"`
	Choice    int       `json:"choice,omitempty"`
	Success   bool      `json:"success,omitempty"`
	Seats     []SeatRef `json:"seats,omitempty"`
}

// SeatRef names a seat on the wire.
type SeatRef struct {
	Section string `json:"section"`
	Row     int    `json:"row"`
	Number  int    `json:"number"`
}

type SeatStateMsg struct {
	Section string `json:"section"`
	Row     int    `json:"row"`
	Number  int    `json:"number"`
	Status  string `json:"status"`
}

type SeatInfo struct {
	Section string  `json:"section"`
	Row     int     `json:"row"`
	Number  int     `json:"number"`
	Price   float64 `json:"price"`
}

type SuggestionMsg struct {
	SuggestionNumber int        `json:"suggestion_number"`
	Seats            []SeatInfo `json:"seats"`
	TotalPrice       float64    `json:"total_price"`
}

type ServerMessage struct {
	Type        string          `json:"type"`
	Seats       []SeatStateMsg  `json:"seats,omitempty"`
	Suggestions []SuggestionMsg `json:"suggestions,omitempty"`
	Choice      int             `json:"choice,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// SeatStates converts a store snapshot into its wire form.
func SeatStates(snap []store.SeatState) []SeatStateMsg {
	states := make([]SeatStateMsg, 0, len(snap))
	for _, s := range snap {
		states = append(states, SeatStateMsg{
			Section: string(s.Key.Section),
			Row:     s.Key.Row,
			Number:  s.Key.Number,
			Status:  string(s.Status),
		})
	}
	return states
}

// Suggestions converts finder output into its wire form, numbering the
// suggestions from one. Per-seat prices come from the static layout.
func Suggestions(sugs []finder.Suggestion) []SuggestionMsg {
	msgs := make([]SuggestionMsg, 0, len(sugs))
	for i, sug := range sugs {
		seats := make([]SeatInfo, 0, len(sug.Seats))
		for _, key := range sug.Seats {
			seats = append(seats, SeatInfo{
				Section: string(key.Section),
				Row:     key.Row,
				Number:  key.Number,
				Price:   key.Section.Layout().Price,
			})
		}
		msgs = append(msgs, SuggestionMsg{
			SuggestionNumber: i + 1,
			Seats:            seats,
			TotalPrice:       sug.TotalPrice,
		})
	}
	return msgs
}

// SeatKeys converts wire seat references back to domain keys. Returns
// false if any section name is unknown.
func SeatKeys(refs []SeatRef) ([]venue.SeatKey, bool) {
	keys := make([]venue.SeatKey, 0, len(refs))
	for _, ref := range refs {
		section := venue.Section(ref.Section)
		if !section.Valid() {
			return nil, false
		}
		keys = append(keys, venue.SeatKey{Section: section, Row: ref.Row, Number: ref.Number})
	}
	return keys, true
}
