package store

import (
	"errors"
	"testing"
	"time"

	"github.com/pagegrade/backend/recommend"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Shutdown() })
	return s
}

func sampleRecs() []recommend.Recommendation {
	return []recommend.Recommendation{
		{ID: "title-length-1", RuleID: "title-length", Priority: "high"},
		{ID: "image-alt-1", RuleID: "image-alt", Priority: "high"},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveSet("a1", sampleRecs()); err != nil {
		t.Fatalf("SaveSet failed: %v", err)
	}

	rows, err := s.Get("a1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Status != StatusPending {
			t.Errorf("row %s: expected status pending, got %q", row.ID, row.Status)
		}
	}
}

func TestGetUnknownAnalysis(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	s.SaveSet("a1", sampleRecs())

	if err := s.UpdateStatus("a1", "title-length-1", StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	rows, _ := s.Get("a1")
	for _, row := range rows {
		switch row.ID {
		case "title-length-1":
			if row.Status != StatusCompleted {
				t.Errorf("expected completed, got %q", row.Status)
			}
		case "image-alt-1":
			if row.Status != StatusPending {
				t.Errorf("other row should stay pending, got %q", row.Status)
			}
		}
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	s := newTestStore(t)
	s.SaveSet("a1", sampleRecs())

	if err := s.UpdateStatus("a1", "title-length-1", "done"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := s.UpdateStatus("a1", "nope", StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown recommendation, got %v", err)
	}
	if err := s.UpdateStatus("missing", "title-length-1", StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown analysis, got %v", err)
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	s1, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s1.SaveSet("a1", sampleRecs())
	s1.UpdateStatus("a1", "image-alt-1", StatusDismissed)
	if err := s1.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	s2, err := New(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Shutdown()

	rows, err := s2.Get("a1")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	var dismissed bool
	for _, row := range rows {
		if row.ID == "image-alt-1" && row.Status == StatusDismissed {
			dismissed = true
		}
	}
	if !dismissed {
		t.Error("dismissed status not persisted across restart")
	}
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	s.SaveSet("old", sampleRecs())

	s.mutex.Lock()
	s.records["old"].SavedAt = time.Now().Add(-48 * time.Hour)
	s.mutex.Unlock()

	s.SaveSet("fresh", sampleRecs())
	s.Cleanup(24 * time.Hour)

	if _, err := s.Get("old"); !errors.Is(err, ErrNotFound) {
		t.Error("expected old record to be cleaned up")
	}
	if _, err := s.Get("fresh"); err != nil {
		t.Errorf("fresh record should survive cleanup: %v", err)
	}
}

func TestSaveSetReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	s.SaveSet("a1", sampleRecs())
	s.UpdateStatus("a1", "title-length-1", StatusCompleted)

	s.SaveSet("a1", sampleRecs())
	rows, _ := s.Get("a1")
	for _, row := range rows {
		if row.Status != StatusPending {
			t.Errorf("re-saved rows should reset to pending, got %q", row.Status)
		}
	}
}
