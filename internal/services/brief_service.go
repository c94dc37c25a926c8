package services

import (
	"context"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/mappers"
	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/internal/slug"
	"bountyboard_backend/pkg/apperrors"
)

type BriefService interface {
	CreateBrief(ctx context.Context, ownerID *int64, req *dto.CreateBriefRequest) (*dto.BriefResponse, error)
	GetBriefBySlug(ctx context.Context, slugOrRef string) (*dto.BriefResponse, error)
	UpdateBrief(ctx context.Context, id int64, req *dto.UpdateBriefRequest) (*dto.BriefResponse, error)
	ListBriefs(ctx context.Context) ([]*dto.BriefResponse, error)
	AssignSlug(ctx context.Context, id int64) (string, error)
	BackfillSlugs(ctx context.Context) (int, error)
}

type briefService struct {
	briefRepo      repositories.BriefRepository
	submissionRepo repositories.SubmissionRepository
	userRepo       repositories.UserRepository
}

func NewBriefService(
	briefRepo repositories.BriefRepository,
	submissionRepo repositories.SubmissionRepository,
	userRepo repositories.UserRepository,
) BriefService {
	return &briefService{
		briefRepo:      briefRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
	}
}

func (s *briefService) CreateBrief(ctx context.Context, ownerID *int64, req *dto.CreateBriefRequest) (*dto.BriefResponse, error) {
	brief := mappers.NewBriefFromCreate(req, ownerID, time.Now())

	if err := s.briefRepo.Create(ctx, brief); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "brief created", "brief_id", brief.ID, "slug", req.Slug)

	return mappers.BriefToResponse(brief, nil), nil
}

// GetBriefBySlug ищет бриф по slug, а для легаси-ссылок вида "brief-{id}"
// дополнительно пробует числовой id.
func (s *briefService) GetBriefBySlug(ctx context.Context, slugOrRef string) (*dto.BriefResponse, error) {
	brief, err := s.briefRepo.FindBySlug(ctx, slugOrRef)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, apperrors.DatabaseError(err)
		}

		id, ok := slug.ParseFallbackID(slugOrRef)
		if !ok {
			return nil, apperrors.ErrNotFound(err, "brief", "Brief not found").
				WithDetails(map[string]string{"slug": slugOrRef})
		}

		brief, err = s.briefRepo.FindByID(ctx, id)
		if err != nil {
			if repositories.IsNotFound(err) {
				return nil, apperrors.ErrNotFound(err, "brief", "Brief not found").
					WithDetails(map[string]string{"slug": slugOrRef})
			}
			return nil, apperrors.DatabaseError(err)
		}
	}

	owner := s.loadOwner(ctx, brief)

	resp := mappers.BriefToResponse(brief, owner)
	resp.Organization = mappers.OrganizationFor(brief, owner)
	return resp, nil
}

func (s *briefService) UpdateBrief(ctx context.Context, id int64, req *dto.UpdateBriefRequest) (*dto.BriefResponse, error) {
	brief, err := s.briefRepo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	mappers.ApplyBriefUpdate(brief, req)

	if err := s.briefRepo.Update(ctx, brief); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	count, err := s.submissionRepo.CountForBrief(ctx, brief.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	owner := s.loadOwner(ctx, brief)

	resp := mappers.BriefToResponse(brief, owner)
	resp.Organization = mappers.OrganizationFor(brief, owner)
	resp.SubmissionCount = &count

	logger.CtxInfo(ctx, "brief updated", "brief_id", brief.ID)

	return resp, nil
}

func (s *briefService) ListBriefs(ctx context.Context) ([]*dto.BriefResponse, error) {
	items, err := s.briefRepo.ListWithOwners(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.BriefResponse, 0, len(items))
	for _, item := range items {
		count := item.SubmissionCount
		resp := mappers.BriefToResponse(&item.Brief, item.Owner)
		resp.Organization = mappers.OrganizationFor(&item.Brief, item.Owner)
		resp.SubmissionCount = &count
		responses = append(responses, resp)
	}

	return responses, nil
}

// AssignSlug выводит slug из заголовка брифа и сохраняет его.
// Уже заполненный slug возвращается без изменений.
func (s *briefService) AssignSlug(ctx context.Context, id int64) (string, error) {
	brief, err := s.briefRepo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", apperrors.ErrBriefNotFound
		}
		return "", apperrors.DatabaseError(err)
	}

	if brief.Slug != nil && *brief.Slug != "" {
		return *brief.Slug, nil
	}

	return s.assignSlug(ctx, brief)
}

// BackfillSlugs проставляет slug всем легаси-записям без него.
// Сбой на отдельной записи логируется и не прерывает проход.
func (s *briefService) BackfillSlugs(ctx context.Context) (int, error) {
	briefs, err := s.briefRepo.ListMissingSlug(ctx)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}

	assigned := 0
	for _, brief := range briefs {
		newSlug, err := s.assignSlug(ctx, brief)
		if err != nil {
			logger.CtxWithError(ctx, "slug backfill failed for brief", err, "brief_id", brief.ID)
			continue
		}
		logger.CtxInfo(ctx, "slug assigned", "brief_id", brief.ID, "slug", newSlug)
		assigned++
	}

	return assigned, nil
}

// assignSlug пишет выведенный slug, при коллизии один раз добавляет "-{id}".
// Повторная коллизия уже означает поврежденные данные и отдается как ошибка.
func (s *briefService) assignSlug(ctx context.Context, brief *models.Brief) (string, error) {
	candidate := slug.Generate(brief.Title)
	if candidate == "" {
		candidate = slug.Fallback(brief.ID)
	}

	err := s.briefRepo.UpdateSlug(ctx, brief.ID, candidate)
	if err == nil {
		return candidate, nil
	}
	if !repositories.IsUniqueViolation(err) {
		return "", apperrors.DatabaseError(err)
	}

	candidate = slug.WithID(candidate, brief.ID)
	if err := s.briefRepo.UpdateSlug(ctx, brief.ID, candidate); err != nil {
		if repositories.IsUniqueViolation(err) {
			return "", apperrors.ErrConflict(err, "brief", "Could not assign a unique slug")
		}
		return "", apperrors.DatabaseError(err)
	}

	return candidate, nil
}

func (s *briefService) loadOwner(ctx context.Context, brief *models.Brief) *models.User {
	if brief.OwnerID == nil {
		return nil
	}
	owner, err := s.userRepo.FindByID(ctx, *brief.OwnerID)
	if err != nil {
		if !repositories.IsNotFound(err) {
			logger.CtxWithError(ctx, "failed to load brief owner", err, "brief_id", brief.ID)
		}
		return nil
	}
	return owner
}
