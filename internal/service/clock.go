package service

import "time"

// now is the system clock used for creation timestamps. Truncated to
// microseconds, the precision PostgreSQL keeps, so a created value and a
// later read of it compare equal on every storage driver.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
