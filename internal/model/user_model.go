package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Email       string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	MemberSince *time.Time `json:"member_since,omitempty"`
	AppointedAt *time.Time `json:"appointed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
