package services

import (
	"context"
	"strings"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/mappers"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type FeedbackService interface {
	ListForSubmission(ctx context.Context, submissionID int64) ([]*dto.FeedbackResponse, error)
	CreateFeedback(ctx context.Context, submissionID int64, authorID *int64, authorName string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type feedbackService struct {
	feedbackRepo   repositories.FeedbackRepository
	submissionRepo repositories.SubmissionRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	submissionRepo repositories.SubmissionRepository,
) FeedbackService {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *feedbackService) ListForSubmission(ctx context.Context, submissionID int64) ([]*dto.FeedbackResponse, error) {
	if _, err := s.submissionRepo.FindByID(ctx, submissionID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "submission", "Submission not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	items, err := s.feedbackRepo.ListForSubmission(ctx, submissionID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.FeedbackResponse, 0, len(items))
	for _, f := range items {
		responses = append(responses, mappers.FeedbackToResponse(f))
	}

	return responses, nil
}

func (s *feedbackService) CreateFeedback(ctx context.Context, submissionID int64, authorID *int64, authorName string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, apperrors.NewBadRequestError("Comment is required")
	}

	if _, err := s.submissionRepo.FindByID(ctx, submissionID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "submission", "Submission not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	feedback := &models.Feedback{
		SubmissionID:   submissionID,
		AuthorID:       authorID,
		AuthorName:     authorName,
		Comment:        comment,
		RequiresAction: req.RequiresAction,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "feedback created", "feedback_id", feedback.ID, "submission_id", submissionID)

	return mappers.FeedbackToResponse(feedback), nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, id int64, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, apperrors.NewBadRequestError("Comment is required")
	}

	if err := s.feedbackRepo.UpdateComment(ctx, id, comment); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "feedback", "Feedback not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return mappers.FeedbackToResponse(feedback), nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return apperrors.ErrNotFound(err, "feedback", "Feedback not found")
		}
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "feedback deleted", "feedback_id", id)
	return nil
}
