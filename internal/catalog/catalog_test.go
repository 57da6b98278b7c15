package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinPrice(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"$50+", 50},
		{"$150", 150},
		{"$15+", 15},
		{"$240+", 240},
		{"Consultation", 0},
		{"Free", 0},
		{"", 0},
		{"price on request", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, MinPrice(tt.label))
		})
	}
}

func TestFindItem(t *testing.T) {
	cat, item, ok := FindItem(1, "HairCut")
	require.True(t, ok)
	assert.Equal(t, "Haircuts & Styling", cat.Category)
	assert.Equal(t, "$50+", item.Price)
	assert.Equal(t, 45, item.Duration)

	_, _, ok = FindItem(1, "Full Color")
	assert.False(t, ok, "Full Color lives in category 2")

	_, _, ok = FindItem(99, "HairCut")
	assert.False(t, ok)
}

func TestFindStylist(t *testing.T) {
	s, ok := FindStylist(2)
	require.True(t, ok)
	assert.Equal(t, "Emma Chen", s.Name)

	anyAvail, ok := FindStylist(AnyAvailableStylistID)
	require.True(t, ok)
	assert.Equal(t, "Any Available", anyAvail.Name)

	_, ok = FindStylist(0)
	assert.False(t, ok)
}

func TestTimeSlots(t *testing.T) {
	assert.Len(t, TimeSlots, 21)
	assert.True(t, IsValidTimeSlot("9:00 AM"))
	assert.True(t, IsValidTimeSlot("7:00 PM"))
	assert.False(t, IsValidTimeSlot("7:30 PM"))
	assert.False(t, IsValidTimeSlot("14:00"))
}
