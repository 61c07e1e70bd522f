package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/docstruct/internal/processor"
)

func TestContentHashHex_Deterministic(t *testing.T) {
	a := ContentHashHex([]byte("hello"))
	b := ContentHashHex([]byte("hello"))
	if a != b {
		t.Errorf("same content produced different hashes: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if c := ContentHashHex([]byte("world")); c == a {
		t.Error("different content produced the same hash")
	}
}

func TestContentHashHex_KnownValue(t *testing.T) {
	// sha256("")
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := ContentHashHex(nil); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued, CreatedAt: time.Now()}

	for _, st := range []JobStatus{StatusLoading, StatusClassifying, StatusStructuring, StatusCompleted} {
		job.SetStatus(st, string(st))
		if job.Snapshot().Status != st {
			t.Errorf("expected status %s, got %s", st, job.Snapshot().Status)
		}
	}
	if job.Snapshot().Phase != string(StatusCompleted) {
		t.Errorf("phase not updated: %+v", job.Snapshot())
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued}
	job.AddError("unsupported file type")
	job.AddError("empty document")

	snap := job.Snapshot()
	if len(snap.Errors) != 2 || snap.Errors[0] != "unsupported file type" {
		t.Errorf("unexpected errors: %v", snap.Errors)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued}
	if job.Snapshot().Errors == nil {
		t.Error("snapshot errors should be an empty slice, not nil")
	}
}

func TestJob_SetResultReleasesFileData(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued}
	job.SetFileData([]byte("raw document bytes"))
	if job.FileData() == nil {
		t.Fatal("file data not stored")
	}

	res := &processor.Result{}
	res.Stats.Headings = 3
	job.SetResult(res)

	if job.FileData() != nil {
		t.Error("raw bytes should be released once the result is stored")
	}
	if got := job.Result(); got == nil || got.Stats.Headings != 3 {
		t.Errorf("unexpected result: %+v", got)
	}
	if job.Snapshot().Result == nil {
		t.Error("snapshot should carry the result")
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: NewJobID(), Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get(job.ID); got != job {
		t.Errorf("expected stored job, got %v", got)
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(time.Minute)
	old := &Job{ID: NewJobID(), Status: StatusCompleted, UpdatedAt: time.Now().Add(-2 * time.Minute)}
	fresh := &Job{ID: NewJobID(), Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get(old.ID) != nil {
		t.Error("expired job should be evicted")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("fresh job should survive cleanup")
	}
}

func TestNewJobID_UniqueAndSortable(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char id, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
