package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatrolive/seating-backend/internal/finder"
	"github.com/teatrolive/seating-backend/internal/venue"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New(context.Background(), venue.BuildSeats())
	t.Cleanup(st.Close)
	return st
}

func TestStatusRoundTrip(t *testing.T) {
	st := newTestStore(t)
	key := venue.SeatKey{Section: venue.SectionA1, Row: 1, Number: 1}

	status, err := st.Status(key)
	require.NoError(t, err)
	assert.Equal(t, venue.StatusFree, status)

	require.NoError(t, st.SetStatus(key, venue.StatusBooked))

	status, err = st.Status(key)
	require.NoError(t, err)
	assert.Equal(t, venue.StatusBooked, status)
}

func TestUnknownKeyFailsLoudly(t *testing.T) {
	st := newTestStore(t)
	bogus := venue.SeatKey{Section: venue.SectionA1, Row: 99, Number: 1}

	_, err := st.Status(bogus)
	assert.ErrorIs(t, err, ErrSeatNotFound)

	err = st.SetStatus(bogus, venue.StatusHeld)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSnapshotSortedAndIdempotent(t *testing.T) {
	st := newTestStore(t)

	first := st.Snapshot()
	second := st.Snapshot()

	require.Len(t, first, 270)
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Negative(t, venue.CompareKeys(first[i-1].Key, first[i].Key))
	}
}

func TestCountFree(t *testing.T) {
	st := newTestStore(t)

	assert.Equal(t, 10, st.CountFree(venue.SectionA1))

	require.NoError(t, st.SetStatus(venue.SeatKey{Section: venue.SectionA1, Row: 1, Number: 1}, venue.StatusBooked))
	require.NoError(t, st.SetStatus(venue.SeatKey{Section: venue.SectionA1, Row: 2, Number: 5}, venue.StatusHeld))

	assert.Equal(t, 8, st.CountFree(venue.SectionA1))
}

func TestSuggestAndHoldMarksEverySuggestedSeat(t *testing.T) {
	st := newTestStore(t)

	sugs := st.SuggestAndHold(2, finder.CategoryScope(venue.CategoryVIP))
	require.NotEmpty(t, sugs)

	for _, sug := range sugs {
		require.Len(t, sug.Seats, 2)
		for _, key := range sug.Seats {
			status, err := st.Status(key)
			require.NoError(t, err)
			assert.Equal(t, venue.StatusHeld, status, "seat %s not held", key)
		}
	}
}

func TestSuggestAndHoldNeverReusesHeldSeats(t *testing.T) {
	st := newTestStore(t)
	seen := make(map[venue.SeatKey]bool)

	// Drain the VIP tier: each call must return seats disjoint from
	// every earlier call, then the category cascades and finally dries
	// up entirely.
	for i := 0; i < 40; i++ {
		sugs := st.SuggestAndHold(3, finder.CategoryScope(venue.CategoryVIP))
		if len(sugs) == 0 {
			break
		}
		for _, sug := range sugs {
			for _, key := range sug.Seats {
				assert.False(t, seen[key], "seat %s offered twice", key)
				seen[key] = true
			}
		}
	}

	assert.Empty(t, st.SuggestAndHold(3, finder.CategoryScope(venue.CategoryVIP)))
}

func TestConcurrentSuggestAndHoldNoOverlap(t *testing.T) {
	st := newTestStore(t)

	var mu sync.Mutex
	var wg sync.WaitGroup
	all := make([]venue.SeatKey, 0)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sugs := st.SuggestAndHold(3, finder.AnywhereScope())
			mu.Lock()
			defer mu.Unlock()
			for _, sug := range sugs {
				all = append(all, sug.Seats...)
			}
		}()
	}
	wg.Wait()

	seen := make(map[venue.SeatKey]bool, len(all))
	for _, key := range all {
		require.False(t, seen[key], "seat %s held by two requests", key)
		seen[key] = true
	}
}

func TestBookAndRelease(t *testing.T) {
	st := newTestStore(t)
	keys := []venue.SeatKey{
		{Section: venue.SectionA1, Row: 1, Number: 1},
		{Section: venue.SectionA1, Row: 1, Number: 2},
	}

	require.NoError(t, st.Book(keys))
	for _, key := range keys {
		status, err := st.Status(key)
		require.NoError(t, err)
		assert.Equal(t, venue.StatusBooked, status)
	}

	require.NoError(t, st.Release(keys))
	for _, key := range keys {
		status, err := st.Status(key)
		require.NoError(t, err)
		assert.Equal(t, venue.StatusFree, status)
	}
}

func TestBatchWithUnknownKeyLeavesStoreUntouched(t *testing.T) {
	st := newTestStore(t)
	good := venue.SeatKey{Section: venue.SectionA1, Row: 1, Number: 1}
	bogus := venue.SeatKey{Section: venue.SectionA1, Row: 99, Number: 99}

	err := st.Book([]venue.SeatKey{good, bogus})
	assert.ErrorIs(t, err, ErrSeatNotFound)

	status, err := st.Status(good)
	require.NoError(t, err)
	assert.Equal(t, venue.StatusFree, status)
}
