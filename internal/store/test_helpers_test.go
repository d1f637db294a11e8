package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/todo/internal/task"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// createTestStore creates a new SQLite store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleTasks returns a newest-first list with one completed task.
func sampleTasks() []task.Task {
	return []task.Task{
		{ID: "t2", Text: "Walk dog", Completed: false, CreatedAt: t0.Add(time.Minute)},
		{ID: "t1", Text: "Buy milk", Completed: true, CreatedAt: t0.Add(123 * time.Millisecond)},
	}
}

// assertSameTasks compares lists field by field, using time.Equal for
// timestamps.
func assertSameTasks(t *testing.T, want, got []task.Task) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if w.ID != g.ID || w.Text != g.Text || w.Completed != g.Completed || !w.CreatedAt.Equal(g.CreatedAt) {
			t.Errorf("task[%d] = %+v, want %+v", i, g, w)
		}
	}
}
