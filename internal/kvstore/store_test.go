package kvstore

import (
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemory_RoundTrip(t *testing.T) {
	store := NewMemory()

	if err := store.Set("key", payload{Name: "a", Count: 3}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	found, err := store.Get("key", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if got.Name != "a" || got.Count != 3 {
		t.Errorf("Get() = %+v, want {a 3}", got)
	}
}

func TestMemory_GetMissing(t *testing.T) {
	store := NewMemory()

	var got payload
	found, err := store.Get("absent", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for missing key")
	}
}

func TestMemory_Delete(t *testing.T) {
	store := NewMemory()

	if err := store.Set("key", payload{Name: "a"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var got payload
	found, _ := store.Get("key", &got)
	if found {
		t.Error("key still present after Delete()")
	}

	// Deleting a missing key is a no-op
	if err := store.Delete("key"); err != nil {
		t.Errorf("Delete() on missing key error = %v", err)
	}
}

func TestMemory_SnapshotIsolation(t *testing.T) {
	store := NewMemory()

	v := payload{Name: "original"}
	if err := store.Set("key", v); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v.Name = "mutated"

	var got payload
	if _, err := store.Get("key", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "original" {
		t.Errorf("stored value changed after caller mutation: %q", got.Name)
	}
}

func TestBolt_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/test.db"

	store, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() error = %v", err)
	}

	if err := store.Set("key", payload{Name: "a", Count: 7}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	found, err := store.Get("key", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || got.Count != 7 {
		t.Errorf("Get() = (%v, %+v), want found {a 7}", found, got)
	}

	if err := store.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	found, _ = store.Get("key", &got)
	if found {
		t.Error("key still present after Delete()")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestBolt_SurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/test.db"

	store, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() error = %v", err)
	}
	if err := store.Set("key", payload{Name: "persisted"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	store, err = OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() reopen error = %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	var got payload
	found, err := store.Get("key", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || got.Name != "persisted" {
		t.Errorf("Get() after reopen = (%v, %+v)", found, got)
	}
}
