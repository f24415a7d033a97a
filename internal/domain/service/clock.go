package service

import "time"

// Clock supplies the instant a feed is evaluated at.
type Clock interface {
	// Now returns the current time in the clock's location.
	Now() time.Time
}
