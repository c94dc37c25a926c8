package services

import (
	"context"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/mappers"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type SubmissionService interface {
	ListForBrief(ctx context.Context, briefID int64) ([]*dto.SubmissionResponse, error)
	ReviewSubmission(ctx context.Context, id int64, reviewer string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	submissionRepo repositories.SubmissionRepository
	briefRepo      repositories.BriefRepository
	userRepo       repositories.UserRepository
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	briefRepo repositories.BriefRepository,
	userRepo repositories.UserRepository,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		briefRepo:      briefRepo,
		userRepo:       userRepo,
	}
}

// ListForBrief возвращает сабмишены брифа. Бриф без сабмишенов дает пустой
// список, несуществующий бриф - 404.
func (s *submissionService) ListForBrief(ctx context.Context, briefID int64) ([]*dto.SubmissionResponse, error) {
	brief, err := s.briefRepo.FindByID(ctx, briefID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	owner := s.loadBriefOwner(ctx, brief)

	items, err := s.submissionRepo.ListForBrief(ctx, briefID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.SubmissionResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mappers.SubmissionToResponse(&item.Submission, brief, owner, item.User))
	}

	return responses, nil
}

func (s *submissionService) ReviewSubmission(ctx context.Context, id int64, reviewer string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "submission", "Submission not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	now := time.Now()
	submission.Status = req.Status
	submission.ReviewedBy = &reviewer
	submission.ReviewedAt = &now

	if req.Feedback != nil {
		submission.Feedback = req.Feedback
	}
	if req.PayoutAmount != nil {
		submission.PayoutAmount = *req.PayoutAmount
	}
	if req.AllowsResubmission != nil {
		submission.AllowsResubmission = *req.AllowsResubmission
	}

	if err := s.submissionRepo.UpdateReview(ctx, submission); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "submission", "Submission not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "submission reviewed",
		"submission_id", submission.ID, "status", submission.Status, "reviewed_by", reviewer)

	brief, err := s.briefRepo.FindByID(ctx, submission.BriefID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	owner := s.loadBriefOwner(ctx, brief)

	var user *models.User
	if submission.UserID != nil {
		user, _ = s.userRepo.FindByID(ctx, *submission.UserID)
	}

	return mappers.SubmissionToResponse(submission, brief, owner, user), nil
}

func (s *submissionService) loadBriefOwner(ctx context.Context, brief *models.Brief) *models.User {
	if brief.OwnerID == nil {
		return nil
	}
	owner, err := s.userRepo.FindByID(ctx, *brief.OwnerID)
	if err != nil {
		return nil
	}
	return owner
}
