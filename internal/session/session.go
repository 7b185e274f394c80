// Package session drives one client's request/offer/decision lifecycle
// against the seat store. A session belongs to exactly one connection
// goroutine and is never shared, so it carries no lock; every seat it
// holds is tracked so disconnects always release.
package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/teatrolive/seating-backend/internal/finder"
	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/venue"
)

var (
	ErrBadPhase = errors.New("operation not allowed in current phase")
	ErrClosed   = errors.New("session closed")
)

type Phase string

const (
	PhaseConnected Phase = "connected"
	PhaseOffered   Phase = "offered"
	PhaseConfirmed Phase = "confirmed"
	PhaseDeclined  Phase = "declined"
	PhaseClosed    Phase = "closed"
)

type Session struct {
	id      string
	store   *store.Store
	log     *zap.Logger
	phase   Phase
	held    map[venue.SeatKey]struct{}
	offered []finder.Suggestion
}

func New(id string, st *store.Store, log *zap.Logger) *Session {
	return &Session{
		id:    id,
		store: st,
		log:   log,
		phase: PhaseConnected,
		held:  make(map[venue.SeatKey]struct{}),
	}
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Phase() Phase { return s.phase }

// Request searches for amount seats in scope and holds every seat of
// every suggestion returned. An empty result leaves the session in
// place so the client can ask again.
func (s *Session) Request(amount int, scope finder.Scope) ([]finder.Suggestion, error) {
	if s.phase != PhaseConnected {
		return nil, ErrBadPhase
	}

	sugs := s.store.SuggestAndHold(amount, scope)
	if len(sugs) == 0 {
		s.log.Info("no seats available", zap.Int("amount", amount))
		return nil, nil
	}

	for _, sug := range sugs {
		for _, key := range sug.Seats {
			s.held[key] = struct{}{}
		}
	}
	s.offered = sugs
	s.phase = PhaseOffered
	s.log.Info("seats offered",
		zap.Int("amount", amount),
		zap.Int("suggestions", len(sugs)))
	return sugs, nil
}

// Decision is the outcome of a Choose call.
type Decision struct {
	Accepted bool
	Choice   int
	Seats    []venue.SeatKey
}

// Choose resolves the offer round. A choice in 1..len(offered) books
// that suggestion and frees the rest; zero or anything out of range
// declines everything. Either way all holds from this round are gone
// afterwards.
func (s *Session) Choose(choice int) (Decision, error) {
	if s.phase != PhaseOffered {
		return Decision{}, ErrBadPhase
	}

	if choice < 1 || choice > len(s.offered) {
		if err := s.releaseHeld(); err != nil {
			return Decision{}, err
		}
		s.offered = nil
		s.phase = PhaseDeclined
		s.log.Info("suggestions declined", zap.Int("choice", choice))
		return Decision{Accepted: false, Choice: choice}, nil
	}

	chosen := s.offered[choice-1]
	if err := s.store.Book(chosen.Seats); err != nil {
		return Decision{}, err
	}
	for _, key := range chosen.Seats {
		delete(s.held, key)
	}
	if err := s.releaseHeld(); err != nil {
		return Decision{}, err
	}
	s.offered = nil
	s.phase = PhaseConfirmed
	s.log.Info("suggestion accepted", zap.Int("choice", choice))
	return Decision{Accepted: true, Choice: choice, Seats: chosen.Seats}, nil
}

// PaymentResult settles an external payment attempt: booked seats stay
// booked on success, everything listed goes back to free on failure.
func (s *Session) PaymentResult(success bool, keys []venue.SeatKey) error {
	if s.phase == PhaseClosed {
		return ErrClosed
	}

	var err error
	if success {
		err = s.store.Book(keys)
	} else {
		err = s.store.Release(keys)
	}
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(s.held, key)
	}
	s.log.Info("payment settled", zap.Bool("success", success), zap.Int("seats", len(keys)))
	return nil
}

// Close releases every seat the session still holds. Safe to call more
// than once; the connection handler defers it so disconnects in any
// phase clean up.
func (s *Session) Close() {
	if s.phase == PhaseClosed {
		return
	}
	if len(s.held) > 0 {
		if err := s.releaseHeld(); err != nil {
			s.log.Error("releasing held seats on close", zap.Error(err))
		}
	}
	s.offered = nil
	s.phase = PhaseClosed
	s.log.Info("session closed")
}

func (s *Session) releaseHeld() error {
	if len(s.held) == 0 {
		return nil
	}
	keys := make([]venue.SeatKey, 0, len(s.held))
	for key := range s.held {
		keys = append(keys, key)
	}
	if err := s.store.Release(keys); err != nil {
		return err
	}
	s.held = make(map[venue.SeatKey]struct{})
	return nil
}
