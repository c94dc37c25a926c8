package dto

import (
	"time"

	"bountyboard_backend/internal/models"
)

type ApplyRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	InstagramHandle string `json:"instagramHandle" validate:"required"`
	TiktokHandle    string `json:"tiktokHandle"`
	YoutubeChannel  string `json:"youtubeChannel"`
}

type ApplyResponse struct {
	ApplicationID int64 `json:"applicationId"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
	Notes  *string                  `json:"notes"`
}

type ApplicationResponse struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           *string `json:"phone"`
	InstagramHandle string  `json:"instagramHandle"`
	TiktokHandle    *string `json:"tiktokHandle"`
	YoutubeChannel  *string `json:"youtubeChannel"`

	Status models.ApplicationStatus `json:"status"`

	IDVerified        bool `json:"idVerified"`
	BankVerified      bool `json:"bankVerified"`
	InstagramVerified bool `json:"instagramVerified"`

	AdminNotes      *string `json:"adminNotes"`
	RejectionReason *string `json:"rejectionReason"`

	AppliedAt  time.Time  `json:"appliedAt"`
	ApprovedAt *time.Time `json:"approvedAt"`
	RejectedAt *time.Time `json:"rejectedAt"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Count        int                    `json:"count"`
}
