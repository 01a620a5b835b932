package timezone

import "time"

// All booking times are salon-local; the zone is set once at startup.

var salonLocation = time.Local

func Set(name string) {
	if name == "" {
		return
	}
	if loc, err := time.LoadLocation(name); err == nil {
		salonLocation = loc
	}
}

func Location() *time.Location {
	return salonLocation
}

func Now() time.Time {
	return time.Now().In(salonLocation)
}
