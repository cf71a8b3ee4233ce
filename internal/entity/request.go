package entity

import (
	"strings"
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// LibrarianRequest is a member's petition to be promoted to the librarian
// role. A user holds at most one pending request at a time.
type LibrarianRequest struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Motivation      string        `json:"motivation"`
	Status          RequestStatus `json:"status"`
	RequestedAt     time.Time     `json:"requested_at"`
	ReviewedAt      *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy      string        `json:"reviewed_by,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
}

func (r *LibrarianRequest) IsPending() bool {
	return r.Status == RequestPending
}

// Approve marks the request approved. Promotion of the requester's role is
// the service's responsibility and must happen in the same transaction.
func (r *LibrarianRequest) Approve(reviewerID string) error {
	if r.Status != RequestPending {
		return NewInvalidState("only pending requests can be approved")
	}
	now := time.Now()
	r.Status = RequestApproved
	r.ReviewedAt = &now
	r.ReviewedBy = reviewerID
	return nil
}

// Reject refuses the request with a non-blank reason.
func (r *LibrarianRequest) Reject(reviewerID, reason string) error {
	if r.Status != RequestPending {
		return NewInvalidState("only pending requests can be rejected")
	}
	if strings.TrimSpace(reason) == "" {
		return NewValidation("a rejection reason is required")
	}
	now := time.Now()
	r.Status = RequestRejected
	r.ReviewedAt = &now
	r.ReviewedBy = reviewerID
	r.RejectionReason = reason
	return nil
}
