package pipeline

import (
	"errors"
	"testing"
	"time"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestNewJob(t *testing.T) {
	job := NewJob([]Source{{Path: "a.md"}, {Path: "b.md"}})

	if len(job.ID) != 26 {
		t.Errorf("expected 26-character job id, got %q", job.ID)
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if job.Progress.Total != 2 {
		t.Errorf("expected total 2, got %d", job.Progress.Total)
	}
}

func TestNewJobID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 1000 {
		id := newJobID()
		if seen[id] {
			t.Fatalf("duplicate job id %q", id)
		}
		seen[id] = true
	}
}

func TestEncodeULID(t *testing.T) {
	var zero [16]byte
	if got := encodeULID(zero); got != "00000000000000000000000000" {
		t.Errorf("expected all zeros, got %q", got)
	}
	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	if got := encodeULID(ones); got != "7ZZZZZZZZZZZZZZZZZZZZZZZZZ" {
		t.Errorf("expected max ULID, got %q", got)
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob(nil)

	for _, status := range []JobStatus{StatusRendering, StatusCompleted} {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(status)

		if job.Status != status {
			t.Errorf("expected status %q, got %q", status, job.Status)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", status)
		}
	}
}

func TestJob_Finish(t *testing.T) {
	tests := []struct {
		name   string
		errs   []error
		status JobStatus
	}{
		{"all rendered", []error{nil, nil}, StatusCompleted},
		{"some failed", []error{nil, errors.New("boom")}, StatusPartial},
		{"all failed", []error{errors.New("a"), errors.New("b")}, StatusFailed},
	}
	for _, tt := range tests {
		job := NewJob(make([]Source, len(tt.errs)))
		for i, err := range tt.errs {
			job.SetResult(i, Result{Path: "doc.md", Err: err})
		}
		job.Finish()
		if job.Status != tt.status {
			t.Errorf("%s: expected status %q, got %q", tt.name, tt.status, job.Status)
		}
	}
}

func TestJob_SnapshotDocumentsOnlyWhenDone(t *testing.T) {
	job := NewJob([]Source{{Path: "a.md"}})
	job.SetResult(0, Result{Path: "a.md", HTML: "<p>a</p>"})

	if snap := job.Snapshot(); snap.Documents != nil {
		t.Errorf("expected no documents before finish, got %d", len(snap.Documents))
	}

	job.Finish()
	snap := job.Snapshot()
	if len(snap.Documents) != 1 || snap.Documents[0].HTML != "<p>a</p>" {
		t.Errorf("expected rendered document in snapshot, got %+v", snap.Documents)
	}
}

func TestJob_SnapshotErrors(t *testing.T) {
	job := NewJob(make([]Source, 2))
	if snap := job.Snapshot(); snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}

	job.SetResult(1, Result{Path: "b.md", Err: errors.New("invalid icon")})
	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "b.md: invalid icon" {
		t.Errorf("expected error %q, got %q", "b.md: invalid icon", snap.Progress.Errors[0])
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "store-1", UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("store-1")
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != "store-1" {
		t.Errorf("expected ID %q, got %q", "store-1", got.ID)
	}
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := &Job{ID: "old", UpdatedAt: time.Now()}
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := &Job{ID: "new", UpdatedAt: time.Now()}
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get("new") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}
