package storage

import (
	"context"
	"testing"
	"time"

	"github.com/ziadkadry99/craftfolio/internal/contact"
	"github.com/ziadkadry99/craftfolio/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)
	v, ok, err := s.Get(context.Background(), "nope")
	if err != nil || ok || v != "" {
		t.Errorf("Get(missing) = %q, %v, %v", v, ok, err)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, v := range []string{"first", "second"} {
		if err := s.Set(ctx, "k", v); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "second" {
		t.Errorf("Get = %q, %v, %v; want second", v, ok, err)
	}

	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("key still present after Remove")
	}
}

func TestBacksContactCache(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cache := contact.NewCache(s)

	r := contact.NewRecord(contact.Fields{Name: "a", Email: "b", Company: "c", Message: "d"},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "ua")
	for i := 1; i <= 3; i++ {
		l, err := cache.Append(ctx, r)
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if len(l) != i {
			t.Errorf("len = %d, want %d", len(l), i)
		}
	}

	raw, ok, _ := s.Get(ctx, contact.CacheKey)
	if !ok {
		t.Fatal("cache not stored under the well-known key")
	}
	l, err := contact.ParseLog([]byte(raw))
	if err != nil || len(l) != 3 || !l[2].Equal(r) {
		t.Errorf("stored log = %+v (%v)", l, err)
	}
}

func TestCorruptValueLoadsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Set(ctx, contact.CacheKey, "{{{")
	if l := contact.NewCache(s).Load(ctx); len(l) != 0 {
		t.Errorf("Load = %+v, want empty", l)
	}
}

func TestCacheClearRemovesKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cache := contact.NewCache(s)
	r := contact.NewRecord(contact.Fields{Name: "a", Email: "b", Company: "c", Message: "d"},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "ua")
	if _, err := cache.Append(ctx, r); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := s.Get(ctx, contact.CacheKey); ok {
		t.Error("cache key still stored after Clear")
	}
	if l := cache.Load(ctx); len(l) != 0 {
		t.Errorf("Load after Clear = %+v, want empty", l)
	}
}
