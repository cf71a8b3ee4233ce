package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pendingWork() *Work {
	return &Work{
		ID:          "work-1",
		Title:       "Clean Architecture",
		Author:      "R. Martin",
		Type:        WorkTypeBook,
		Status:      StatusPending,
		SubmittedBy: "user-1",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestWork_Approve(t *testing.T) {
	work := pendingWork()

	err := work.Approve("librarian-1")

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, work.Status)
	assert.Equal(t, "librarian-1", work.ApprovedBy)
	assert.NotNil(t, work.ApprovedAt)
	assert.True(t, work.IsAvailable())
}

func TestWork_Approve_ClearsRejectionReason(t *testing.T) {
	work := pendingWork()
	work.RejectionReason = "stale reason"

	err := work.Approve("librarian-1")

	assert.NoError(t, err)
	assert.Empty(t, work.RejectionReason)
}

func TestWork_Approve_NotPending(t *testing.T) {
	work := pendingWork()
	assert.NoError(t, work.Approve("librarian-1"))

	err := work.Approve("librarian-2")

	assert.Error(t, err)
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, "librarian-1", work.ApprovedBy)
}

func TestWork_Reject(t *testing.T) {
	work := pendingWork()

	err := work.Reject("duplicate of an existing entry")

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, work.Status)
	assert.Equal(t, "duplicate of an existing entry", work.RejectionReason)
	assert.False(t, work.IsAvailable())
}

func TestWork_Reject_EmptyReason(t *testing.T) {
	work := pendingWork()

	err := work.Reject("   ")

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, StatusPending, work.Status)
}

func TestWork_Reject_ShortReasonAcceptedAtEntityLevel(t *testing.T) {
	// The entity only requires a non-blank reason. The 10-character floor
	// belongs to the moderation layer.
	work := pendingWork()

	err := work.Reject("too short")

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, work.Status)
}

func TestWork_TerminalStatesAreFinal(t *testing.T) {
	approved := pendingWork()
	assert.NoError(t, approved.Approve("librarian-1"))
	assert.True(t, IsInvalidState(approved.Reject("reason that is long enough")))
	assert.Equal(t, StatusApproved, approved.Status)

	rejected := pendingWork()
	assert.NoError(t, rejected.Reject("reason that is long enough"))
	assert.True(t, IsInvalidState(rejected.Approve("librarian-1")))
	assert.Equal(t, StatusRejected, rejected.Status)
}

func TestWork_Counters_OnlyWhenAvailable(t *testing.T) {
	work := pendingWork()

	work.IncrementViews()
	work.IncrementDownloads()
	assert.Equal(t, 0, work.Views)
	assert.Equal(t, 0, work.Downloads)

	assert.NoError(t, work.Approve("librarian-1"))

	work.IncrementViews()
	work.IncrementViews()
	work.IncrementDownloads()
	assert.Equal(t, 2, work.Views)
	assert.Equal(t, 1, work.Downloads)
}

func TestWork_Counters_RejectedWorkUnchanged(t *testing.T) {
	work := pendingWork()
	assert.NoError(t, work.Reject("rejected for good reasons"))

	work.IncrementViews()
	work.IncrementDownloads()

	assert.Equal(t, 0, work.Views)
	assert.Equal(t, 0, work.Downloads)
}

func TestWork_SetTitle(t *testing.T) {
	work := pendingWork()
	before := work.UpdatedAt

	err := work.SetTitle("A Better Title")

	assert.NoError(t, err)
	assert.Equal(t, "A Better Title", work.Title)
	assert.True(t, work.UpdatedAt.After(before) || work.UpdatedAt.Equal(before))
}

func TestWork_SetTitle_Empty(t *testing.T) {
	work := pendingWork()

	err := work.SetTitle("  ")

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Clean Architecture", work.Title)
}
