package telegram

import (
	"testing"
	"time"
)

func TestAdmissionGuardRateLimit(t *testing.T) {
	g := newAdmissionGuard(10, 2, time.Minute)

	if !g.Allow(1) || !g.Allow(1) {
		t.Fatal("burst requests should pass")
	}
	if g.Allow(1) {
		t.Error("third immediate request should be limited")
	}
	// A different chat has its own budget.
	if !g.Allow(2) {
		t.Error("other chat should not share the limiter")
	}
}

func TestAdmissionGuardSingleInFlight(t *testing.T) {
	g := newAdmissionGuard(10, 3, time.Minute)

	if !g.Begin(1) {
		t.Fatal("first Begin should acquire the slot")
	}
	if g.Begin(1) {
		t.Error("second Begin should be rejected while in flight")
	}
	if !g.Begin(2) {
		t.Error("other chat should have its own slot")
	}

	g.End(1)
	if !g.Begin(1) {
		t.Error("Begin should succeed after End")
	}
}
