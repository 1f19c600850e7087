package store_test

import (
	"testing"
	"time"
)

// mustDate parses a "2006-01-02" date or fails the test.
func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
