package journal

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/flopperam/unrealmcp/internal/unreal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	store := openTestStore(t)

	var journalMode string
	if err := store.sqlDB.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int
	if err := store.sqlDB.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatalf("query busy_timeout: %v", err)
	}
	if busyTimeout != 5000 {
		t.Fatalf("busy_timeout = %d, want 5000", busyTimeout)
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := []unreal.CommandRecord{
		{
			ID:       "cmd-1",
			Type:     "spawn_actor",
			Params:   json.RawMessage(`{"name":"Cube_1"}`),
			Status:   "ok",
			Started:  base,
			Duration: 42 * time.Millisecond,
		},
		{
			ID:       "cmd-2",
			Type:     "delete_actor",
			Params:   json.RawMessage(`{"name":"Cube_1"}`),
			Status:   "error",
			Error:    "actor not found",
			Started:  base.Add(time.Second),
			Duration: 5 * time.Millisecond,
		},
	}
	for _, rec := range records {
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("record %s: %v", rec.ID, err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "cmd-2" {
		t.Errorf("expected newest first, got %q", entries[0].ID)
	}
	if entries[1].Type != "spawn_actor" || entries[1].Status != "ok" {
		t.Errorf("unexpected entry: %+v", entries[1])
	}
	if entries[0].Error != "actor not found" {
		t.Errorf("unexpected error text: %q", entries[0].Error)
	}
	if entries[1].Duration != 42*time.Millisecond {
		t.Errorf("unexpected duration: %v", entries[1].Duration)
	}
	if !entries[1].Started.Equal(base) {
		t.Errorf("unexpected timestamp: %v", entries[1].Started)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := unreal.CommandRecord{
			ID:      string(rune('a' + i)),
			Type:    "get_actors_in_level",
			Status:  "ok",
			Started: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestRecordRequiresID(t *testing.T) {
	store := openTestStore(t)

	err := store.Record(context.Background(), unreal.CommandRecord{Type: "spawn_actor"})
	if err == nil {
		t.Fatal("expected error")
	}
}
