package store

import (
	"context"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// TasksPath is the backend collection path for tasks.
const TasksPath = "/api/tasks"

// Tasks is the domain data store for todo tasks.
type Tasks struct {
	*Collection[domain.Task]
}

// NewTasks creates the tasks store and attaches it to the bridge.
func NewTasks(gateway ports.Gateway, bridge *cache.Bridge) *Tasks {
	return &Tasks{Collection: New[domain.Task]("tasks", TasksPath, gateway, bridge)}
}

// Add creates a new task from the given input.
func (t *Tasks) Add(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	return t.Create(ctx, input)
}

// SetDone toggles a task's completion flag.
func (t *Tasks) SetDone(ctx context.Context, id string, done bool) (domain.Task, error) {
	return t.Update(ctx, id, domain.TaskPatch{Done: &done})
}

// Rename updates a task's title.
func (t *Tasks) Rename(ctx context.Context, id, title string) (domain.Task, error) {
	return t.Update(ctx, id, domain.TaskPatch{Title: &title})
}

// Open returns the tasks not yet completed.
func (t *Tasks) Open() []domain.Task {
	var open []domain.Task
	for _, task := range t.Items() {
		if !task.Done {
			open = append(open, task)
		}
	}
	return open
}
