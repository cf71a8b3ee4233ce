package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DownloadModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	WorkID       string    `gorm:"type:uuid;not null;index" json:"work_id"`
	UserID       *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	DownloadedAt time.Time `gorm:"not null" json:"downloaded_at"`
}

func (DownloadModel) TableName() string { return "downloads" }

func (d *DownloadModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
