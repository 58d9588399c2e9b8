// Package domain contains the core domain types for the life dashboard client.
package domain

import "time"

// Task is a single todo item owned by the tasks store.
type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Notes      string     `json:"notes,omitempty"`
	Done       bool       `json:"done"`
	CategoryID string     `json:"categoryId,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// RecordID implements the Record identity used by the collection store.
func (t Task) RecordID() string { return t.ID }

// TaskInput is the payload for creating a task.
type TaskInput struct {
	Title      string     `json:"title"`
	Notes      string     `json:"notes,omitempty"`
	CategoryID string     `json:"categoryId,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
}

// TaskPatch is a partial update for a task. Nil fields are left unchanged.
type TaskPatch struct {
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}
