package booking

import "time"

// ===============================
// Salon operating hours
// ===============================

// The salon runs on fixed hours; there is no per-employee weekly schedule.
const (
	OpeningTime = "09:00"
	ClosingTime = "18:00"

	// Candidate slots are generated on a fixed grid regardless of the
	// service duration.
	SlotStepMinutes = 30
)

type AvailabilityInput struct {
	EmployeeID uint
	ServiceID  uint
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Back-to-back intervals (one ending exactly when the other starts) do
// not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DayWindow returns the opening and closing instants for the given date,
// in the date's location.
func DayWindow(date time.Time) (time.Time, time.Time) {
	return atClock(date, OpeningTime), atClock(date, ClosingTime)
}

func atClock(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// AvailableSlots generates the bookable start times for one employee on
// one date. Candidates run from opening to closing on the slot grid; a
// candidate survives when its whole interval fits before closing and does
// not overlap any busy interval. Busy intervals must already exclude
// cancelled bookings. The result is chronological.
func AvailableSlots(date time.Time, duration time.Duration, busy []Interval) []TimeSlot {
	open, close := DayWindow(date)
	step := SlotStepMinutes * time.Minute

	slots := []TimeSlot{}

	for cur := open; !cur.After(close); cur = cur.Add(step) {
		end := cur.Add(duration)
		if end.After(close) {
			break
		}

		conflict := false
		for _, b := range busy {
			if Overlaps(cur, end, b.Start, b.End) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   end.Format("15:04"),
			})
		}
	}

	return slots
}
