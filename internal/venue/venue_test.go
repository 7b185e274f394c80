package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatsGeneratesFullCatalog(t *testing.T) {
	seats := BuildSeats()

	require.Len(t, seats, 270)

	for key, seat := range seats {
		l := key.Section.Layout()
		assert.Equal(t, key, seat.Key)
		assert.Equal(t, StatusFree, seat.Status)
		assert.Equal(t, l.Price, seat.Price)
		assert.Equal(t, l.Visibility, seat.Visibility)
	}
}

func TestSectionGeometry(t *testing.T) {
	cases := []struct {
		section Section
		rows    int
		perRow  int
		price   float64
	}{
		{SectionA1, 2, 5, 150},
		{SectionB2, 4, 6, 90},
		{SectionC3, 4, 6, 80},
		{SectionF, 4, 8, 30},
	}

	seats := BuildSeats()
	for _, tc := range cases {
		t.Run(string(tc.section), func(t *testing.T) {
			count := 0
			for key := range seats {
				if key.Section != tc.section {
					continue
				}
				count++
				assert.LessOrEqual(t, key.Row, tc.rows)
				assert.LessOrEqual(t, key.Number, tc.perRow)
			}
			assert.Equal(t, tc.rows*tc.perRow, count)
			assert.Equal(t, tc.price, tc.section.Layout().Price)
		})
	}
}

func TestCompareKeysOrdersBySectionRowNumber(t *testing.T) {
	a := SeatKey{Section: SectionA1, Row: 2, Number: 5}
	b := SeatKey{Section: SectionB1, Row: 1, Number: 1}
	c := SeatKey{Section: SectionB1, Row: 1, Number: 2}
	d := SeatKey{Section: SectionB1, Row: 2, Number: 1}

	assert.Negative(t, CompareKeys(a, b))
	assert.Negative(t, CompareKeys(b, c))
	assert.Negative(t, CompareKeys(c, d))
	assert.Zero(t, CompareKeys(a, a))
	assert.Positive(t, CompareKeys(d, a))
}

func TestCategoryFallbackChain(t *testing.T) {
	lower, ok := CategoryVIP.Lower()
	require.True(t, ok)
	assert.Equal(t, CategoryBusiness, lower)

	lower, ok = CategoryBusiness.Lower()
	require.True(t, ok)
	assert.Equal(t, CategoryEconomy, lower)

	_, ok = CategoryEconomy.Lower()
	assert.False(t, ok)
}

func TestCategorySectionsCoverCatalog(t *testing.T) {
	seen := make(map[Section]bool)
	for _, cat := range []Category{CategoryVIP, CategoryBusiness, CategoryEconomy} {
		for _, section := range cat.Sections() {
			assert.False(t, seen[section], "section %s in two categories", section)
			seen[section] = true
		}
	}
	assert.Len(t, seen, len(Sections))
}

func TestUnknownNamesAreInvalid(t *testing.T) {
	assert.False(t, Section("Z9").Valid())
	assert.Equal(t, -1, Section("Z9").Index())
	assert.False(t, Category("Platinum").Valid())
	assert.True(t, SectionD.Valid())
	assert.True(t, CategoryEconomy.Valid())
}

func TestDemoBookingsExistInCatalog(t *testing.T) {
	seats := BuildSeats()
	keys := DemoBookings()

	require.NotEmpty(t, keys)
	seen := make(map[SeatKey]bool, len(keys))
	for _, key := range keys {
		_, ok := seats[key]
		assert.True(t, ok, "demo seat %s not in catalog", key)
		assert.False(t, seen[key], "demo seat %s listed twice", key)
		seen[key] = true
	}
}
