// Package biztime holds the tenant-facing business timezone. Storage and
// transport stay in UTC; the business location only matters where a wall
// clock is shown or a schedule boundary is computed.
package biztime

import (
	"sync"
	"time"
)

// DefaultTimezone is used when the server config leaves the timezone empty.
const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init loads the business timezone. Called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, falling back to UTC when Init
// was never called.
func Location() *time.Location {
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
