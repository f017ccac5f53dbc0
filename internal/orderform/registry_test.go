package orderform

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry(time.Hour, nil)
	s := newTestSession(t, "croissant")

	r.Add(s)
	got, err := r.Get(s.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatal("Get returned a different session")
	}
}

func TestRegistry_UnknownID(t *testing.T) {
	r := NewRegistry(time.Hour, nil)
	if _, err := r.Get(uuid.New()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegistry_IdleExpiry(t *testing.T) {
	clock := &testClock{t: testNow}
	r := NewRegistry(30*time.Minute, clock.now)

	s := newTestSession(t, "croissant")
	r.Add(s)

	clock.advance(20 * time.Minute)
	if _, err := r.Get(s.ID()); err != nil {
		t.Fatalf("Get within ttl: %v", err)
	}

	// Get refreshed lastSeen, so another 20 minutes is still fine.
	clock.advance(20 * time.Minute)
	if _, err := r.Get(s.ID()); err != nil {
		t.Fatalf("Get after refresh: %v", err)
	}

	clock.advance(31 * time.Minute)
	if _, err := r.Get(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestRegistry_AddPurgesIdle(t *testing.T) {
	clock := &testClock{t: testNow}
	r := NewRegistry(time.Minute, clock.now)

	r.Add(newTestSession(t, "croissant"))
	r.Add(newTestSession(t, "eclair"))
	clock.advance(2 * time.Minute)

	r.Add(newTestSession(t, "danish"))
	r.mu.Lock()
	got := len(r.sessions)
	r.mu.Unlock()
	if got != 1 {
		t.Fatalf("expected idle sessions purged, got %d", got)
	}
}

func TestRegistry_ZeroTTLKeepsSessions(t *testing.T) {
	clock := &testClock{t: testNow}
	r := NewRegistry(0, clock.now)

	s := newTestSession(t, "croissant")
	r.Add(s)
	clock.advance(1000 * time.Hour)
	if _, err := r.Get(s.ID()); err != nil {
		t.Fatalf("zero ttl should not expire: %v", err)
	}
}
