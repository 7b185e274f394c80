// Package finder turns "N seats somewhere in this scope" into ranked
// candidate groupings. It only ever reads the seat view it is handed;
// holding and booking are the store's business.
package finder

import (
	"slices"

	"github.com/teatrolive/seating-backend/internal/venue"
)

// maxSuggestions caps how many groupings one request is offered.
const maxSuggestions = 3

// View is the seat inventory as the finder sees it. Suggest never
// mutates it, so the store can pass its live map while holding the
// critical section.
type View = map[venue.SeatKey]*venue.Seat

// Scope bounds a search: exactly one of Section, Category, or Anywhere
// is set. A category scope cascades to lower categories when the
// requested one cannot seat the party.
type Scope struct {
	Section  venue.Section
	Category venue.Category
	Anywhere bool
}

func SectionScope(s venue.Section) Scope   { return Scope{Section: s} }
func CategoryScope(c venue.Category) Scope { return Scope{Category: c} }
func AnywhereScope() Scope                 { return Scope{Anywhere: true} }

// Suggestion is one candidate grouping of exactly the requested number
// of seats, plus the summed price.
type Suggestion struct {
	Seats      []venue.SeatKey
	TotalPrice float64
}

// Suggest produces up to three groupings of exactly amount free seats
// within scope, best first. Returns nil when the scope cannot seat the
// party at all.
func Suggest(seats View, amount int, scope Scope) []Suggestion {
	if amount <= 0 {
		return nil
	}
	switch {
	case scope.Anywhere:
		if sugs := groupingsPerSection(seats, amount, venue.Sections); len(sugs) > 0 {
			return sugs
		}
		return crossSectionFallback(seats, amount)
	case scope.Category != "":
		for cat, ok := scope.Category, true; ok; cat, ok = cat.Lower() {
			if sugs := suggestInSections(seats, amount, cat.Sections(), true); len(sugs) > 0 {
				return sugs
			}
		}
		return nil
	default:
		return suggestInSections(seats, amount, []venue.Section{scope.Section}, false)
	}
}

// suggestInSections searches the given sections, optionally ranked by
// free-seat count. Each section contributes at most one grouping built
// on its own terms; only if no section manages that do we fall back to
// chunking the scope's free seats in seat order, which may span
// sections of the scope.
func suggestInSections(seats View, amount int, sections []venue.Section, rankByFree bool) []Suggestion {
	if rankByFree {
		sections = rankSections(seats, sections)
	}

	if sugs := groupingsPerSection(seats, amount, sections); len(sugs) > 0 {
		return sugs
	}

	var sugs []Suggestion
	free := make([]venue.SeatKey, 0)
	for _, section := range sections {
		free = append(free, freeSeats(seats, section)...)
	}
	slices.SortFunc(free, venue.CompareKeys)
	for len(free) >= amount && len(sugs) < maxSuggestions {
		sugs = append(sugs, newSuggestion(seats, free[:amount]))
		free = free[amount:]
	}
	return sugs
}

// groupingsPerSection collects one grouping per section able to seat
// the party, in the order given, capped at the suggestion limit.
func groupingsPerSection(seats View, amount int, sections []venue.Section) []Suggestion {
	var sugs []Suggestion
	for _, section := range sections {
		if keys := sectionGrouping(seats, section, amount); keys != nil {
			sugs = append(sugs, newSuggestion(seats, keys))
			if len(sugs) == maxSuggestions {
				break
			}
		}
	}
	return sugs
}

// sectionGrouping builds one grouping inside a single section: a
// same-row run when one exists, otherwise partial runs extended into
// adjacent rows and topped up by a whole-section scan. Returns nil when
// the section cannot seat the full party.
func sectionGrouping(seats View, section venue.Section, amount int) []venue.SeatKey {
	run, partials := scanRows(seats, section, amount)
	if run != nil {
		return run
	}
	picked, taken := extendRuns(seats, section, partials, amount)
	if len(picked) == amount {
		return picked
	}
	return topUp(seats, section, picked, taken, amount)
}

// scanRows walks the section row by row accumulating runs of free
// seats; a run is cut by any non-free seat. The first run reaching
// amount wins. Otherwise all partial runs are returned, longest first.
func scanRows(seats View, section venue.Section, amount int) ([]venue.SeatKey, [][]venue.SeatKey) {
	l := section.Layout()
	var partials [][]venue.SeatKey
	for row := 1; row <= l.Rows; row++ {
		var run []venue.SeatKey
		for number := 1; number <= l.SeatsPerRow; number++ {
			key := venue.SeatKey{Section: section, Row: row, Number: number}
			seat, ok := seats[key]
			if !ok || seat.Status != venue.StatusFree {
				if len(run) > 0 {
					partials = append(partials, run)
					run = nil
				}
				continue
			}
			run = append(run, key)
			if len(run) == amount {
				return run, nil
			}
		}
		if len(run) > 0 {
			partials = append(partials, run)
		}
	}
	slices.SortStableFunc(partials, func(a, b []venue.SeatKey) int { return len(b) - len(a) })
	return nil, partials
}

// extendRuns grows partial runs vertically (same seat number, row above
// then row below) and concatenates runs until the party fits or the
// runs are exhausted.
func extendRuns(seats View, section venue.Section, runs [][]venue.SeatKey, amount int) ([]venue.SeatKey, map[venue.SeatKey]bool) {
	picked := make([]venue.SeatKey, 0, amount)
	taken := make(map[venue.SeatKey]bool)
	add := func(key venue.SeatKey) bool {
		if !taken[key] {
			taken[key] = true
			picked = append(picked, key)
		}
		return len(picked) == amount
	}

	for _, run := range runs {
		for _, key := range run {
			if add(key) {
				return picked, taken
			}
		}
		for _, key := range run {
			for _, row := range [2]int{key.Row + 1, key.Row - 1} {
				neighbor := venue.SeatKey{Section: section, Row: row, Number: key.Number}
				seat, ok := seats[neighbor]
				if !ok || seat.Status != venue.StatusFree {
					continue
				}
				if add(neighbor) {
					return picked, taken
				}
			}
		}
	}
	return picked, taken
}

// topUp completes a short grouping with the first free seats of the
// section in (row, number) order. Returns nil if the section still
// cannot seat the party.
func topUp(seats View, section venue.Section, picked []venue.SeatKey, taken map[venue.SeatKey]bool, amount int) []venue.SeatKey {
	l := section.Layout()
	for row := 1; row <= l.Rows; row++ {
		for number := 1; number <= l.SeatsPerRow; number++ {
			key := venue.SeatKey{Section: section, Row: row, Number: number}
			seat, ok := seats[key]
			if !ok || seat.Status != venue.StatusFree || taken[key] {
				continue
			}
			picked = append(picked, key)
			if len(picked) == amount {
				return picked
			}
		}
	}
	return nil
}

// crossSectionFallback takes the first amount free seats anywhere in
// the venue, in seat order, ignoring section boundaries. Last resort
// for "anywhere" requests.
func crossSectionFallback(seats View, amount int) []Suggestion {
	var free []venue.SeatKey
	for key, seat := range seats {
		if seat.Status == venue.StatusFree {
			free = append(free, key)
		}
	}
	if len(free) < amount {
		return nil
	}
	slices.SortFunc(free, venue.CompareKeys)
	return []Suggestion{newSuggestion(seats, free[:amount])}
}

// rankSections orders sections by free-seat count, most available
// first. The stable sort keeps catalog order for ties.
func rankSections(seats View, sections []venue.Section) []venue.Section {
	ranked := slices.Clone(sections)
	counts := make(map[venue.Section]int, len(ranked))
	for _, section := range ranked {
		counts[section] = CountFree(seats, section)
	}
	slices.SortStableFunc(ranked, func(a, b venue.Section) int { return counts[b] - counts[a] })
	return ranked
}

// CountFree reports how many seats of the section are currently free.
func CountFree(seats View, section venue.Section) int {
	n := 0
	for key, seat := range seats {
		if key.Section == section && seat.Status == venue.StatusFree {
			n++
		}
	}
	return n
}

func freeSeats(seats View, section venue.Section) []venue.SeatKey {
	var free []venue.SeatKey
	for key, seat := range seats {
		if key.Section == section && seat.Status == venue.StatusFree {
			free = append(free, key)
		}
	}
	return free
}

func newSuggestion(seats View, keys []venue.SeatKey) Suggestion {
	keys = slices.Clone(keys)
	var total float64
	for _, key := range keys {
		if seat, ok := seats[key]; ok {
			total += seat.Price
		}
	}
	return Suggestion{Seats: keys, TotalPrice: total}
}
