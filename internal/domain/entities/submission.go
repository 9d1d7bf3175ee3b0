package entities

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"justice-airdrop.backend/pkg/utils"
)

// SubmissionStatus represents the review state of a submission
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Valid reports whether s is a known status
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// Submission is a user's proof of task completion
type Submission struct {
	ID         uint             `json:"id"`
	UserID     uint             `json:"user_id"`
	TaskID     uint             `json:"task_id"`
	Proof      string           `json:"proof"`
	Status     SubmissionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	ReviewedAt null.Time        `json:"reviewed_at"`
}

// Attachment is an optional file uploaded with a submission
type Attachment struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// SubmitInput represents a proof submission
type SubmitInput struct {
	TaskID    uint
	ProofText string
	File      *Attachment
}

// SubmitResponse is returned after a submission is stored
type SubmitResponse struct {
	OK           bool             `json:"ok"`
	SubmissionID uint             `json:"submission_id"`
	Status       SubmissionStatus `json:"status"`
	FileURL      string           `json:"file_url,omitempty"`
}

// ReviewResult describes a single approve or reject transition
type ReviewResult struct {
	OK           bool             `json:"ok"`
	SubmissionID uint             `json:"submission_id"`
	Status       SubmissionStatus `json:"status"`
	UserID       uint             `json:"user_id"`
	Credited     decimal.Decimal  `json:"credited"`
}

// BulkReviewResult describes an approve_all or reject_all run
type BulkReviewResult struct {
	OK     bool             `json:"ok"`
	Status SubmissionStatus `json:"status"`
	Count  int              `json:"count"`
}

// CallbackAction is the action carried by a review button
type CallbackAction string

const (
	CallbackApprove    CallbackAction = "approve"
	CallbackReject     CallbackAction = "reject"
	CallbackApproveAll CallbackAction = "approve_all"
	CallbackRejectAll  CallbackAction = "reject_all"
)

// CallbackInput is the generic review action payload
type CallbackInput struct {
	Action       CallbackAction `json:"action"`
	SubmissionID uint           `json:"submission_id"`
}

// CallbackResult reports the outcome of a dispatched callback
type CallbackResult struct {
	OK           bool             `json:"ok"`
	Action       CallbackAction   `json:"action"`
	SubmissionID uint             `json:"submission_id,omitempty"`
	Status       SubmissionStatus `json:"status"`
	Count        int              `json:"count"`
}

// SubmissionListResponse is a page of submissions
type SubmissionListResponse struct {
	Items []*Submission        `json:"items"`
	Meta  utils.PaginationMeta `json:"meta"`
}
