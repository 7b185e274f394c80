package venue

// SectionLayout fixes a section's geometry and per-seat attributes.
type SectionLayout struct {
	Rows        int
	SeatsPerRow int
	Visibility  float64
	Price       float64
}

// layouts is the static venue table: every section's geometry, keyed by
// section rather than branched on.
var layouts = map[Section]SectionLayout{
	SectionA1: {Rows: 2, SeatsPerRow: 5, Visibility: 100, Price: 150},
	SectionB1: {Rows: 2, SeatsPerRow: 5, Visibility: 100, Price: 150},
	SectionC1: {Rows: 2, SeatsPerRow: 5, Visibility: 100, Price: 150},
	SectionA2: {Rows: 4, SeatsPerRow: 6, Visibility: 90, Price: 90},
	SectionB2: {Rows: 4, SeatsPerRow: 6, Visibility: 90, Price: 90},
	SectionC2: {Rows: 4, SeatsPerRow: 6, Visibility: 90, Price: 90},
	SectionA3: {Rows: 4, SeatsPerRow: 6, Visibility: 80, Price: 80},
	SectionB3: {Rows: 4, SeatsPerRow: 6, Visibility: 80, Price: 80},
	SectionC3: {Rows: 4, SeatsPerRow: 6, Visibility: 80, Price: 80},
	SectionD:  {Rows: 4, SeatsPerRow: 8, Visibility: 70, Price: 30},
	SectionE:  {Rows: 4, SeatsPerRow: 8, Visibility: 70, Price: 30},
	SectionF:  {Rows: 4, SeatsPerRow: 8, Visibility: 70, Price: 30},
}

// Layout returns the section's fixed geometry and pricing.
func (s Section) Layout() SectionLayout {
	return layouts[s]
}

// BuildSeats generates the full seat inventory, every seat Free.
// Deterministic; the returned map is the caller's to own.
func BuildSeats() map[SeatKey]*Seat {
	seats := make(map[SeatKey]*Seat)
	for _, section := range Sections {
		l := layouts[section]
		for row := 1; row <= l.Rows; row++ {
			for number := 1; number <= l.SeatsPerRow; number++ {
				key := SeatKey{Section: section, Row: row, Number: number}
				seats[key] = &Seat{
					Key:        key,
					Visibility: l.Visibility,
					Price:      l.Price,
					Status:     StatusFree,
				}
			}
		}
	}
	return seats
}
