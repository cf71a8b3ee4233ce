package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_work" json:"user_id"`
	WorkID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_work" json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (FavoriteModel) TableName() string { return "favorites" }

func (f *FavoriteModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
