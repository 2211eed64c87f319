package service

import (
	"context"
	"testing"
	"time"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.now = func() time.Time { return now }

	if err := store.Create(ctx, "s1", "admin", time.Hour); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		advance time.Duration
		want    bool
	}{
		{"fresh", 0, true},
		{"before expiry", 59 * time.Minute, true},
		{"at expiry", time.Minute, false},
		{"after cleanup", time.Hour, false},
	}
	for _, tt := range tests {
		now = now.Add(tt.advance)
		ok, err := store.Exists(ctx, "s1")
		if err != nil {
			t.Fatal(err)
		}
		if ok != tt.want {
			t.Errorf("%s: exists = %v, want %v", tt.name, ok, tt.want)
		}
	}
}

func TestMemorySessionStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	store.Create(ctx, "s1", "admin", time.Hour)
	store.Create(ctx, "s2", "admin", time.Hour)
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if ok, _ := store.Exists(ctx, "s1"); ok {
		t.Error("deleted session still exists")
	}
	if ok, _ := store.Exists(ctx, "s2"); !ok {
		t.Error("other session removed")
	}
}
