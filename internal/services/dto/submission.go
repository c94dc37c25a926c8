package dto

import (
	"time"

	"bountyboard_backend/internal/models"
)

// BriefSummary - краткая проекция родительского брифа внутри сабмишена.
type BriefSummary struct {
	ID           int64         `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Reward       Reward        `json:"reward"`
	Organization *Organization `json:"organization"`
}

type SubmissionResponse struct {
	ID      int64        `json:"id"`
	BriefID int64        `json:"briefId"`
	Brief   BriefSummary `json:"brief"`

	CreatorName     string  `json:"creatorName"`
	CreatorEmail    string  `json:"creatorEmail"`
	CreatorUsername *string `json:"creatorUsername"`
	// firstName lastName -> username -> email, в этом порядке
	CreatorDisplayName string `json:"creatorDisplayName"`
	UserID             *int64 `json:"userId"`

	VideoURL       string `json:"videoUrl"`
	VideoFileName  *string `json:"videoFileName"`
	VideoMimeType  *string `json:"videoMimeType"`
	VideoSizeBytes *int64  `json:"videoSizeBytes"`

	Status   models.SubmissionStatus `json:"status"`
	Feedback *string                 `json:"feedback"`

	PayoutAmount interface{}         `json:"payoutAmount"`
	PayoutStatus models.PayoutStatus `json:"payoutStatus"`

	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedBy  *string    `json:"reviewedBy"`
	ReviewedAt  *time.Time `json:"reviewedAt"`

	ParentSubmissionID *int64 `json:"parentSubmissionId"`
	SubmissionVersion  int    `json:"submissionVersion"`
	AllowsResubmission bool   `json:"allowsResubmission"`
}

type ReviewSubmissionRequest struct {
	Status             models.SubmissionStatus `json:"status" validate:"required,is-submission-status"`
	Feedback           *string                 `json:"feedback"`
	PayoutAmount       *string                 `json:"payoutAmount"`
	AllowsResubmission *bool                   `json:"allowsResubmission"`
}
