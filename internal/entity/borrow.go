package entity

import "time"

const (
	// DefaultBorrowDays is the lending period granted at borrow time.
	DefaultBorrowDays = 14
	// ExtensionDays is added to the due date on each extension.
	ExtensionDays = 7
)

// Borrow is a time-boxed lending record granting a user a claim on a work.
// At most one active borrow exists per (user, work) pair.
type Borrow struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	WorkID     string     `json:"work_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Extend pushes the due date by ExtensionDays. Extensions stack: two
// consecutive extends push the due date by twice ExtensionDays.
func (b *Borrow) Extend() error {
	return b.ExtendBy(ExtensionDays)
}

// ExtendBy pushes the due date by the given number of days.
func (b *Borrow) ExtendBy(days int) error {
	if !b.IsActive {
		return NewConflict("borrow is no longer active")
	}
	if days <= 0 {
		days = ExtensionDays
	}
	b.DueDate = b.DueDate.AddDate(0, 0, days)
	return nil
}

// Return closes the borrow. Returning an already-returned borrow is refused.
func (b *Borrow) Return() error {
	if !b.IsActive {
		return NewConflict("borrow has already been returned")
	}
	now := time.Now()
	b.ReturnedAt = &now
	b.IsActive = false
	return nil
}

// IsOverdue reports whether the due date passed while the borrow is active.
// Overdue is derived, never stored.
func (b *Borrow) IsOverdue(now time.Time) bool {
	return b.IsActive && b.DueDate.Before(now)
}
