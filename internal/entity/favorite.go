package entity

import "time"

// Favorite is a user's bookmark of a work. At most one favorite exists per
// (user, work) pair; removal is a hard delete.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WorkID    string    `json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteWithWork pairs a favorite row with its resolved work. Work is nil
// when the referenced work no longer exists.
type FavoriteWithWork struct {
	Favorite Favorite `json:"favorite"`
	Work     *Work    `json:"work,omitempty"`
}
