package models

import (
	"testing"
	"time"
)

func TestSession_IsExpiredAt(t *testing.T) {
	expiry := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: expiry}

	if s.IsExpiredAt(expiry.Add(-time.Second)) {
		t.Error("session must still be valid before its expiry")
	}
	if s.IsExpiredAt(expiry) {
		t.Error("session must still be valid at the exact expiry instant")
	}
	if !s.IsExpiredAt(expiry.Add(time.Second)) {
		t.Error("session must be expired after its expiry")
	}
}
