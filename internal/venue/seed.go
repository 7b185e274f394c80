package venue

// DemoBookings returns a fixed set of seats to pre-book at startup so a
// fresh venue shows a realistic mix of taken and free seats.
func DemoBookings() []SeatKey {
	seats := []struct {
		section Section
		row     int
		number  int
	}{
		{SectionA1, 1, 4}, {SectionA1, 1, 5}, {SectionA1, 2, 1}, {SectionA1, 2, 2}, {SectionA1, 2, 3},
		{SectionB1, 1, 2}, {SectionB1, 1, 3}, {SectionB1, 1, 4}, {SectionB1, 2, 1}, {SectionB1, 2, 5},
		{SectionC1, 1, 2}, {SectionC1, 1, 4}, {SectionC1, 2, 1}, {SectionC1, 2, 3}, {SectionC1, 2, 5},
		{SectionA2, 1, 1}, {SectionA2, 1, 5}, {SectionA2, 2, 2}, {SectionA2, 2, 4}, {SectionA2, 2, 6},
		{SectionA2, 3, 1}, {SectionA2, 3, 3}, {SectionA2, 3, 5}, {SectionA2, 4, 2}, {SectionA2, 4, 4},
		{SectionB2, 1, 2}, {SectionB2, 2, 3}, {SectionB2, 3, 4}, {SectionB2, 4, 5},
		{SectionC2, 1, 5}, {SectionC2, 2, 4}, {SectionC2, 3, 3}, {SectionC2, 4, 2},
		{SectionA3, 2, 1}, {SectionA3, 2, 2}, {SectionA3, 2, 3}, {SectionA3, 2, 4}, {SectionA3, 2, 5}, {SectionA3, 2, 6},
		{SectionA3, 4, 1}, {SectionA3, 4, 2}, {SectionA3, 4, 3}, {SectionA3, 4, 4}, {SectionA3, 4, 5}, {SectionA3, 4, 6},
		{SectionB3, 1, 1}, {SectionB3, 1, 2}, {SectionB3, 1, 3}, {SectionB3, 1, 4}, {SectionB3, 1, 5}, {SectionB3, 1, 6},
		{SectionB3, 2, 3}, {SectionB3, 2, 4}, {SectionB3, 3, 2}, {SectionB3, 3, 3}, {SectionB3, 3, 4}, {SectionB3, 3, 5},
		{SectionB3, 4, 1}, {SectionB3, 4, 2}, {SectionB3, 4, 3}, {SectionB3, 4, 4}, {SectionB3, 4, 5}, {SectionB3, 4, 6},
		{SectionC3, 1, 1}, {SectionC3, 1, 2}, {SectionC3, 1, 3}, {SectionC3, 1, 4}, {SectionC3, 1, 5}, {SectionC3, 1, 6},
		{SectionC3, 3, 1}, {SectionC3, 3, 2}, {SectionC3, 3, 3}, {SectionC3, 3, 4}, {SectionC3, 3, 5}, {SectionC3, 3, 6},
		{SectionD, 1, 1}, {SectionD, 1, 2}, {SectionD, 1, 3}, {SectionD, 1, 4}, {SectionD, 2, 2},
		{SectionD, 3, 1}, {SectionD, 3, 2}, {SectionD, 4, 3},
		{SectionE, 1, 3}, {SectionE, 1, 4}, {SectionE, 1, 5}, {SectionE, 1, 6},
		{SectionE, 2, 3}, {SectionE, 2, 4}, {SectionE, 2, 7}, {SectionE, 2, 8},
	}

	keys := make([]SeatKey, 0, len(seats))
	for _, s := range seats {
		keys = append(keys, SeatKey{Section: s.section, Row: s.row, Number: s.number})
	}
	return keys
}
