package services

import (
	"context"

	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/mappers"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

// Фильтр "все заявки" в списочном эндпоинте
const ApplicationFilterAll = "all"

type InfluencerService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	ListApplications(ctx context.Context, statusFilter string) (*dto.ApplicationListResponse, error)
	UpdateApplicationStatus(ctx context.Context, id int64, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type influencerService struct {
	influencerRepo repositories.InfluencerRepository
	emailProvider  email.Provider
}

func NewInfluencerService(
	influencerRepo repositories.InfluencerRepository,
	emailProvider email.Provider,
) InfluencerService {
	return &influencerService{
		influencerRepo: influencerRepo,
		emailProvider:  emailProvider,
	}
}

// Apply создает заявку инфлюенсера. Дубль email определяется только
// unique-констрейнтом, без предварительного запроса на существование.
func (s *influencerService) Apply(ctx context.Context, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	application := &models.InfluencerApplication{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		InstagramHandle: req.InstagramHandle,
		TiktokHandle:    req.TiktokHandle,
		YoutubeChannel:  req.YoutubeChannel,
		Status:          models.ApplicationStatusPending,
	}

	if err := s.influencerRepo.Create(ctx, application); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.ErrApplicationEmailExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "influencer application received",
		"application_id", application.ID, "instagram", application.InstagramHandle)

	return &dto.ApplyResponse{ApplicationID: application.ID}, nil
}

func (s *influencerService) ListApplications(ctx context.Context, statusFilter string) (*dto.ApplicationListResponse, error) {
	var (
		applications []*models.InfluencerApplication
		err          error
	)

	if statusFilter == ApplicationFilterAll {
		applications, err = s.influencerRepo.List(ctx)
	} else {
		applications, err = s.influencerRepo.ListByStatus(ctx, models.ApplicationStatus(statusFilter))
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, mappers.ApplicationToResponse(a))
	}

	return &dto.ApplicationListResponse{
		Applications: responses,
		Count:        len(responses),
	}, nil
}

func (s *influencerService) UpdateApplicationStatus(ctx context.Context, id int64, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.influencerRepo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "influencer", "Application not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := applyDecision(application, req); err != nil {
		return nil, err
	}

	if err := s.influencerRepo.UpdateStatus(ctx, application); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound(err, "influencer", "Application not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", application.ID, "status", application.Status)

	if application.Status != models.ApplicationStatusPending {
		go s.sendDecisionEmail(application)
	}

	return mappers.ApplicationToResponse(application), nil
}

// sendDecisionEmail уведомляет заявителя о решении. Сбой отправки
// не влияет на результат операции.
func (s *influencerService) sendDecisionEmail(a *models.InfluencerApplication) {
	var (
		subject      string
		templateName string
		data         email.TemplateData
	)

	switch a.Status {
	case models.ApplicationStatusApproved:
		subject = "Your BountyBoard application was approved"
		templateName = email.TemplateApplicationApproved
		data = email.TemplateData{"FirstName": a.FirstName, "Notes": derefString(a.AdminNotes)}
	case models.ApplicationStatusRejected:
		subject = "Your BountyBoard application"
		templateName = email.TemplateApplicationRejected
		data = email.TemplateData{"FirstName": a.FirstName, "Reason": derefString(a.RejectionReason)}
	default:
		return
	}

	if err := s.emailProvider.SendTemplate([]string{a.Email}, subject, templateName, data); err != nil {
		logger.WithError(err).Warn("failed to send application decision email",
			"application_id", a.ID)
	}
}

func applyDecision(a *models.InfluencerApplication, req *dto.UpdateApplicationStatusRequest) error {
	now := timeNow()

	switch req.Status {
	case models.ApplicationStatusApproved:
		a.Status = models.ApplicationStatusApproved
		a.ApprovedAt = &now
		a.AdminNotes = req.Notes
	case models.ApplicationStatusRejected:
		a.Status = models.ApplicationStatusRejected
		a.RejectedAt = &now
		a.RejectionReason = req.Notes
	case models.ApplicationStatusPending:
		a.Status = models.ApplicationStatusPending
		a.AdminNotes = req.Notes
	default:
		return apperrors.ErrInvalidStatus("influencer",
			"Invalid status: must be one of approved, rejected, pending")
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
