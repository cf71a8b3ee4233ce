package entity

import "time"

type Notification struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Read          bool      `json:"read"`
	RelatedWorkID string    `json:"related_work_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
