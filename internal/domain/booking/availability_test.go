package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(t *testing.T, hm string) time.Time {
	t.Helper()
	return atClock(testDate(), hm)
}

func TestOverlaps(t *testing.T) {
	a1, a2 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "10:15", "10:45", true},
		{"contained", "10:10", "10:20", true},
		{"containing", "09:30", "11:00", true},
		{"identical", "10:00", "10:30", true},
		{"back to back after", "10:30", "11:00", false},
		{"back to back before", "09:30", "10:00", false},
		{"disjoint", "12:00", "12:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(a1, a2, at(t, tc.bStart), at(t, tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAvailableSlotsFullDay(t *testing.T) {
	slots := AvailableSlots(testDate(), 30*time.Minute, nil)

	// 09:00 through 17:30 on a half-hour grid.
	assert.Len(t, slots, 18)
	assert.Equal(t, TimeSlot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, TimeSlot{Start: "17:30", End: "18:00"}, slots[len(slots)-1])
}

func TestAvailableSlotsRespectClosing(t *testing.T) {
	slots := AvailableSlots(testDate(), 90*time.Minute, nil)

	// A 90-minute service cannot start later than 16:30.
	assert.Equal(t, "16:30", slots[len(slots)-1].Start)
	for _, s := range slots {
		assert.LessOrEqual(t, s.End, ClosingTime)
	}
}

func TestAvailableSlotsSkipsBusyIntervals(t *testing.T) {
	busy := []Interval{
		{Start: at(t, "10:00"), End: at(t, "10:30")},
	}

	slots := AvailableSlots(testDate(), 30*time.Minute, busy)

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}

	assert.False(t, starts["10:00"])
	// Back-to-back with the busy interval stays bookable.
	assert.True(t, starts["09:30"])
	assert.True(t, starts["10:30"])
}

func TestAvailableSlotsLongServiceAroundBusy(t *testing.T) {
	busy := []Interval{
		{Start: at(t, "11:00"), End: at(t, "11:30")},
	}

	slots := AvailableSlots(testDate(), 60*time.Minute, busy)

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}

	// A 60-minute slot starting at 10:30 would run into the busy interval.
	assert.False(t, starts["10:30"])
	assert.False(t, starts["11:00"])
	assert.True(t, starts["10:00"])
	assert.True(t, starts["11:30"])
}

func TestAvailableSlotsDeterministic(t *testing.T) {
	busy := []Interval{
		{Start: at(t, "09:00"), End: at(t, "12:00")},
		{Start: at(t, "14:00"), End: at(t, "15:00")},
	}

	first := AvailableSlots(testDate(), 30*time.Minute, busy)
	second := AvailableSlots(testDate(), 30*time.Minute, busy)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Start, first[i].Start)
	}
}

func TestAvailableSlotsFullyBooked(t *testing.T) {
	open, close := DayWindow(testDate())
	busy := []Interval{{Start: open, End: close}}

	slots := AvailableSlots(testDate(), 30*time.Minute, busy)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}
