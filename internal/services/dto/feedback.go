package dto

import "time"

type CreateFeedbackRequest struct {
	Comment        string `json:"comment" validate:"required"`
	RequiresAction bool   `json:"requiresAction"`
}

type UpdateFeedbackRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type FeedbackResponse struct {
	ID             int64     `json:"id"`
	SubmissionID   int64     `json:"submissionId"`
	AuthorID       *int64    `json:"authorId"`
	AuthorName     string    `json:"authorName"`
	Comment        string    `json:"comment"`
	RequiresAction bool      `json:"requiresAction"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
