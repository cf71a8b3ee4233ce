package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BorrowModel struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkID     string     `gorm:"type:uuid;not null;index" json:"work_id"`
	BorrowedAt time.Time  `gorm:"not null" json:"borrowed_at"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	IsActive   bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (BorrowModel) TableName() string { return "borrows" }

func (b *BorrowModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
