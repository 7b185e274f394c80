// Package store owns the mutable seat inventory. A single goroutine
// holds the seat map; everything else talks to it through typed
// messages, so each message is one critical section. In particular a
// SuggestAndHold searches and marks its seats held in the same message,
// which is what makes concurrent allocation safe.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/teatrolive/seating-backend/internal/finder"
	"github.com/teatrolive/seating-backend/internal/venue"
)

// ErrSeatNotFound reports an operation on a seat key the catalog never
// produced. The catalog is fixed, so hitting this means a caller built
// a bad key.
var ErrSeatNotFound = errors.New("seat not found")

type Msg interface{ isStoreMsg() }

type GetStatus struct {
	Key   venue.SeatKey
	Reply chan StatusResult
}

type StatusResult struct {
	Status venue.Status
	Err    error
}

type SetStatus struct {
	Key    venue.SeatKey
	Status venue.Status
	Reply  chan error
}

type GetSnapshot struct {
	Reply chan []SeatState
}

// SeatState is one (key, status) pair from a snapshot.
type SeatState struct {
	Key    venue.SeatKey
	Status venue.Status
}

type GetFreeCount struct {
	Section venue.Section
	Reply   chan int
}

// SuggestAndHold runs the finder and marks every suggested seat held,
// atomically. This is the only way to search the inventory.
type SuggestAndHold struct {
	Amount int
	Scope  finder.Scope
	Reply  chan []finder.Suggestion
}

type BookSeats struct {
	Keys  []venue.SeatKey
	Reply chan error
}

type ReleaseSeats struct {
	Keys  []venue.SeatKey
	Reply chan error
}

type Shutdown struct{}

func (GetStatus) isStoreMsg()      {}
func (SetStatus) isStoreMsg()      {}
func (GetSnapshot) isStoreMsg()    {}
func (GetFreeCount) isStoreMsg()   {}
func (SuggestAndHold) isStoreMsg() {}
func (BookSeats) isStoreMsg()      {}
func (ReleaseSeats) isStoreMsg()   {}
func (Shutdown) isStoreMsg()       {}

type Store struct {
	inbox  chan Msg
	seats  map[venue.SeatKey]*venue.Seat
	ctx    context.Context
	cancel context.CancelFunc
}

// New starts the store's owner goroutine over the given inventory. The
// store takes ownership of the map; callers must not touch it again.
func New(parent context.Context, seats map[venue.SeatKey]*venue.Seat) *Store {
	ctx, cancel := context.WithCancel(parent)
	s := &Store{
		inbox:  make(chan Msg, 64),
		seats:  seats,
		ctx:    ctx,
		cancel: cancel,
	}
	go s.loop()
	return s
}

func (s *Store) Inbox() chan<- Msg { return s.inbox }

func (s *Store) loop() {
	for {
		select {
		case <-s.ctx.Done():
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case GetStatus:
				seat, ok := s.seats[msg.Key]
				if !ok {
					msg.Reply <- StatusResult{Err: fmt.Errorf("%w: %s", ErrSeatNotFound, msg.Key)}
					break
				}
				msg.Reply <- StatusResult{Status: seat.Status}

			case SetStatus:
				msg.Reply <- s.setStatus(msg.Key, msg.Status)

			case GetSnapshot:
				msg.Reply <- s.snapshot()

			case GetFreeCount:
				msg.Reply <- finder.CountFree(s.seats, msg.Section)

			case SuggestAndHold:
				sugs := finder.Suggest(s.seats, msg.Amount, msg.Scope)
				for _, sug := range sugs {
					for _, key := range sug.Seats {
						s.seats[key].Status = venue.StatusHeld
					}
				}
				msg.Reply <- sugs

			case BookSeats:
				msg.Reply <- s.setAll(msg.Keys, venue.StatusBooked)

			case ReleaseSeats:
				msg.Reply <- s.setAll(msg.Keys, venue.StatusFree)

			case Shutdown:
				s.cancel()
				return
			}
		}
	}
}

func (s *Store) setStatus(key venue.SeatKey, status venue.Status) error {
	seat, ok := s.seats[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSeatNotFound, key)
	}
	seat.Status = status
	return nil
}

// setAll validates every key before mutating anything, so a bad key
// cannot leave a batch half applied.
func (s *Store) setAll(keys []venue.SeatKey, status venue.Status) error {
	for _, key := range keys {
		if _, ok := s.seats[key]; !ok {
			return fmt.Errorf("%w: %s", ErrSeatNotFound, key)
		}
	}
	for _, key := range keys {
		s.seats[key].Status = status
	}
	return nil
}

func (s *Store) snapshot() []SeatState {
	states := make([]SeatState, 0, len(s.seats))
	for key, seat := range s.seats {
		states = append(states, SeatState{Key: key, Status: seat.Status})
	}
	slices.SortFunc(states, func(a, b SeatState) int {
		return venue.CompareKeys(a.Key, b.Key)
	})
	return states
}

// Request/response wrappers over the inbox, for callers that don't
// need to pipeline messages themselves.

func (s *Store) Status(key venue.SeatKey) (venue.Status, error) {
	reply := make(chan StatusResult, 1)
	s.inbox <- GetStatus{Key: key, Reply: reply}
	res := <-reply
	return res.Status, res.Err
}

func (s *Store) SetStatus(key venue.SeatKey, status venue.Status) error {
	reply := make(chan error, 1)
	s.inbox <- SetStatus{Key: key, Status: status, Reply: reply}
	return <-reply
}

func (s *Store) Snapshot() []SeatState {
	reply := make(chan []SeatState, 1)
	s.inbox <- GetSnapshot{Reply: reply}
	return <-reply
}

func (s *Store) CountFree(section venue.Section) int {
	reply := make(chan int, 1)
	s.inbox <- GetFreeCount{Section: section, Reply: reply}
	return <-reply
}

func (s *Store) SuggestAndHold(amount int, scope finder.Scope) []finder.Suggestion {
	reply := make(chan []finder.Suggestion, 1)
	s.inbox <- SuggestAndHold{Amount: amount, Scope: scope, Reply: reply}
	return <-reply
}

func (s *Store) Book(keys []venue.SeatKey) error {
	reply := make(chan error, 1)
	s.inbox <- BookSeats{Keys: keys, Reply: reply}
	return <-reply
}

func (s *Store) Release(keys []venue.SeatKey) error {
	reply := make(chan error, 1)
	s.inbox <- ReleaseSeats{Keys: keys, Reply: reply}
	return <-reply
}

// Close stops the owner goroutine. Messages sent after Close may never
// be answered.
func (s *Store) Close() {
	s.cancel()
}
