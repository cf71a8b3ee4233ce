package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Author          string     `gorm:"type:varchar(255);not null" json:"author"`
	Description     string     `gorm:"type:text" json:"description"`
	Type            string     `gorm:"type:varchar(20);not null" json:"type"`
	FileURL         string     `gorm:"type:varchar(500)" json:"file_url"`
	ISBN            string     `gorm:"type:varchar(20)" json:"isbn"`
	PublicationYear int        `json:"publication_year"`
	Publisher       string     `gorm:"type:varchar(255)" json:"publisher"`
	FileSize        int64      `json:"file_size"`
	CoverURL        string     `gorm:"type:varchar(500)" json:"cover_url"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SubmittedBy     string     `gorm:"type:uuid;index" json:"submitted_by"`
	ApprovedBy      *string    `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	ViewsCount      int        `gorm:"default:0" json:"views_count"`
	DownloadsCount  int        `gorm:"default:0" json:"downloads_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (WorkModel) TableName() string { return "works" }

func (w *WorkModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type WorkCategoryModel struct {
	WorkID     string `gorm:"type:uuid;primaryKey" json:"work_id"`
	CategoryID string `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (WorkCategoryModel) TableName() string { return "work_categories" }
