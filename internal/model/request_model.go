package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LibrarianRequestModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Motivation      string     `gorm:"type:text;not null" json:"motivation"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RequestedAt     time.Time  `gorm:"not null" json:"requested_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *string    `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
}

func (LibrarianRequestModel) TableName() string { return "librarian_requests" }

func (r *LibrarianRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
