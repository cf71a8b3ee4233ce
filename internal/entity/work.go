package entity

import (
	"strings"
	"time"
)

type WorkType string

const (
	WorkTypeBook     WorkType = "book"
	WorkTypeArticle  WorkType = "article"
	WorkTypeThesis   WorkType = "thesis"
	WorkTypeVideo    WorkType = "video"
	WorkTypeAudio    WorkType = "audio"
	WorkTypeDocument WorkType = "document"
)

type WorkStatus string

const (
	StatusPending  WorkStatus = "pending"
	StatusApproved WorkStatus = "approved"
	StatusRejected WorkStatus = "rejected"
)

type WorkMetadata struct {
	ISBN            string `json:"isbn,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	FileSize        int64  `json:"file_size,omitempty"`
	CoverURL        string `json:"cover_url,omitempty"`
}

// Work is a catalog item submitted for moderation. A work enters the catalog
// as pending and leaves moderation exactly once, to approved or rejected.
type Work struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Author          string       `json:"author"`
	Description     string       `json:"description,omitempty"`
	Type            WorkType     `json:"type"`
	FileURL         string       `json:"file_url,omitempty"`
	Metadata        WorkMetadata `json:"metadata"`
	Status          WorkStatus   `json:"status"`
	SubmittedBy     string       `json:"submitted_by"`
	ApprovedBy      string       `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	Views           int          `json:"views"`
	Downloads       int          `json:"downloads"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Categories      []Category   `json:"categories,omitempty"`
}

// Approve moves a pending work into the catalog. Approving a work that
// already left moderation is an invalid transition.
func (w *Work) Approve(librarianID string) error {
	if w.Status != StatusPending {
		return NewInvalidState("only works in moderation can be approved")
	}
	now := time.Now()
	w.Status = StatusApproved
	w.ApprovedBy = librarianID
	w.ApprovedAt = &now
	w.RejectionReason = ""
	w.UpdatedAt = now
	return nil
}

// Reject refuses a pending work. A non-blank reason is required.
func (w *Work) Reject(reason string) error {
	if w.Status != StatusPending {
		return NewInvalidState("only works in moderation can be rejected")
	}
	if strings.TrimSpace(reason) == "" {
		return NewValidation("a rejection reason is required")
	}
	w.Status = StatusRejected
	w.RejectionReason = reason
	w.UpdatedAt = time.Now()
	return nil
}

// IsAvailable reports whether the work is visible in the public catalog.
func (w *Work) IsAvailable() bool {
	return w.Status == StatusApproved
}

func (w *Work) IsPending() bool {
	return w.Status == StatusPending
}

func (w *Work) IsRejected() bool {
	return w.Status == StatusRejected
}

// IncrementViews bumps the view counter. Counters only move for available
// works; on anything else this is a silent no-op.
func (w *Work) IncrementViews() {
	if w.IsAvailable() {
		w.Views++
	}
}

// IncrementDownloads bumps the download counter for available works only.
func (w *Work) IncrementDownloads() {
	if w.IsAvailable() {
		w.Downloads++
	}
}

// SetTitle replaces the title. The title must not be blank.
func (w *Work) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidation("title cannot be empty")
	}
	w.Title = title
	w.UpdatedAt = time.Now()
	return nil
}

func (w *Work) SetDescription(description string) {
	w.Description = description
	w.UpdatedAt = time.Now()
}
