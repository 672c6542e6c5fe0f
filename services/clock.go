// Package services: services/clock.go
package services

import "time"

// dateFormat is the fixed-width date layout used everywhere. Because it is
// zero-padded, plain string comparison orders dates correctly.
const dateFormat = "2006-01-02"

// nowFunc is swapped out by tests that need a fixed clock.
var nowFunc = time.Now

func today() string {
	return nowFunc().Format(dateFormat)
}
