package store

import (
	"context"
	"fmt"

	"github.com/roach88/todo/internal/task"
)

// DefaultKey is the slot key used when none is configured.
const DefaultKey = "tasks"

// Slot is the single named location holding the serialized task list.
type Slot struct {
	backend Backend
	key     string
}

// NewSlot returns a Slot for key on backend. An empty key selects DefaultKey.
func NewSlot(backend Backend, key string) *Slot {
	if key == "" {
		key = DefaultKey
	}
	return &Slot{backend: backend, key: key}
}

// Key returns the slot key.
func (s *Slot) Key() string {
	return s.key
}

// Load reads the persisted list. A slot that was never written yields an
// empty list and no error. An undecodable value yields an error wrapping
// ErrCorrupt.
func (s *Slot) Load(ctx context.Context) ([]task.Task, error) {
	data, found, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	tasks, err := unmarshalTasks(data)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return tasks, nil
}

// Save writes tasks to the slot, replacing what was there.
func (s *Slot) Save(ctx context.Context, tasks []task.Task) error {
	data, err := marshalTasks(tasks)
	if err != nil {
		return err
	}
	return s.backend.Put(ctx, s.key, data)
}
