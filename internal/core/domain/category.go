package domain

import "time"

// CategoryKind distinguishes income from expense categories.
type CategoryKind string

const (
	// KindExpense marks a category that tracks spending.
	KindExpense CategoryKind = "expense"
	// KindIncome marks a category that tracks earnings.
	KindIncome CategoryKind = "income"
)

// Category is a finance category owned by the categories store.
type Category struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Kind         CategoryKind `json:"kind"`
	MonthlyTotal int64        `json:"monthlyTotalCents"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// RecordID implements the Record identity used by the collection store.
func (c Category) RecordID() string { return c.ID }

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name string       `json:"name"`
	Kind CategoryKind `json:"kind"`
}

// CategoryPatch is a partial update for a category. Nil fields are left unchanged.
type CategoryPatch struct {
	Name *string       `json:"name,omitempty"`
	Kind *CategoryKind `json:"kind,omitempty"`
}
