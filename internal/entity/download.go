package entity

import "time"

// Download records a single download event. UserID is empty for anonymous
// downloads.
type Download struct {
	ID           string    `json:"id"`
	WorkID       string    `json:"work_id"`
	UserID       string    `json:"user_id,omitempty"`
	DownloadedAt time.Time `json:"downloaded_at"`
}
