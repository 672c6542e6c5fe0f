// file: services/clock_test.go
package services

import (
	"testing"
	"time"
)

// setToday pins the service clock to a fixed date for the duration of a test.
func setToday(t *testing.T, date string) {
	t.Helper()
	fixed, err := time.Parse(dateFormat, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	original := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = original })
}
