package venue

import "fmt"

// Section identifies one block of seats in the venue.
type Section string

const (
	SectionA1 Section = "A1"
	SectionB1 Section = "B1"
	SectionC1 Section = "C1"
	SectionA2 Section = "A2"
	SectionB2 Section = "B2"
	SectionC2 Section = "C2"
	SectionA3 Section = "A3"
	SectionB3 Section = "B3"
	SectionC3 Section = "C3"
	SectionD  Section = "D"
	SectionE  Section = "E"
	SectionF  Section = "F"
)

// Sections lists every section in catalog order. This order is the
// tie-break order everywhere seats or sections are ranked.
var Sections = []Section{
	SectionA1, SectionB1, SectionC1,
	SectionA2, SectionB2, SectionC2,
	SectionA3, SectionB3, SectionC3,
	SectionD, SectionE, SectionF,
}

var sectionIndex = func() map[Section]int {
	m := make(map[Section]int, len(Sections))
	for i, s := range Sections {
		m[s] = i
	}
	return m
}()

func (s Section) Valid() bool {
	_, ok := sectionIndex[s]
	return ok
}

// Index returns the section's position in catalog order, or -1 for an
// unknown section.
func (s Section) Index() int {
	i, ok := sectionIndex[s]
	if !ok {
		return -1
	}
	return i
}

// Category is a pricing tier grouping several sections. Categories form
// a fallback chain from the best tier down to the cheapest.
type Category string

const (
	CategoryVIP      Category = "VIP"
	CategoryBusiness Category = "Business"
	CategoryEconomy  Category = "Economy"
)

// categorySections and lowerCategory are the static venue tables. All
// category lookups are table-driven; nothing branches on the section or
// category name.
var categorySections = map[Category][]Section{
	CategoryVIP:      {SectionA1, SectionB1, SectionC1},
	CategoryBusiness: {SectionA2, SectionB2, SectionC2, SectionA3, SectionB3, SectionC3},
	CategoryEconomy:  {SectionD, SectionE, SectionF},
}

var lowerCategory = map[Category]Category{
	CategoryVIP:      CategoryBusiness,
	CategoryBusiness: CategoryEconomy,
}

func (c Category) Valid() bool {
	_, ok := categorySections[c]
	return ok
}

// Sections returns the category's sections in catalog order.
func (c Category) Sections() []Section {
	return categorySections[c]
}

// Lower returns the next cheaper category in the fallback chain.
func (c Category) Lower() (Category, bool) {
	l, ok := lowerCategory[c]
	return l, ok
}

// Status is the booking state of a single seat. The values match the
// single-character states used on the wire.
type Status string

const (
	StatusFree   Status = "F"
	StatusHeld   Status = "R"
	StatusBooked Status = "B"
)

// SeatKey uniquely identifies a seat. Keys order by section catalog
// position, then row, then number.
type SeatKey struct {
	Section Section
	Row     int
	Number  int
}

func (k SeatKey) String() string {
	return fmt.Sprintf("%s-%d-%d", k.Section, k.Row, k.Number)
}

// CompareKeys orders seat keys by (section, row, number) for use with
// slices.SortFunc.
func CompareKeys(a, b SeatKey) int {
	if d := a.Section.Index() - b.Section.Index(); d != 0 {
		return d
	}
	if d := a.Row - b.Row; d != 0 {
		return d
	}
	return a.Number - b.Number
}

// Seat is one seat in the inventory. Only Status changes after the
// catalog is built.
type Seat struct {
	Key        SeatKey
	Visibility float64
	Price      float64
	Status     Status
}
