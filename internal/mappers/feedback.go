package mappers

import (
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services/dto"
)

func FeedbackToResponse(f *models.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:             f.ID,
		SubmissionID:   f.SubmissionID,
		AuthorID:       f.AuthorID,
		AuthorName:     f.AuthorName,
		Comment:        f.Comment,
		RequiresAction: f.RequiresAction,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func ApplicationToResponse(a *models.InfluencerApplication) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             optional(a.Phone),
		InstagramHandle:   a.InstagramHandle,
		TiktokHandle:      optional(a.TiktokHandle),
		YoutubeChannel:    optional(a.YoutubeChannel),
		Status:            a.Status,
		IDVerified:        a.IDVerified,
		BankVerified:      a.BankVerified,
		InstagramVerified: a.InstagramVerified,
		AdminNotes:        a.AdminNotes,
		RejectionReason:   a.RejectionReason,
		AppliedAt:         a.AppliedAt,
		ApprovedAt:        a.ApprovedAt,
		RejectedAt:        a.RejectedAt,
	}
}
