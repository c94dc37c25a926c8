package mappers

import (
	"strings"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services/dto"
)

// DisplayName вычисляет отображаемое имя пользователя:
// "firstName lastName" -> username -> email, в этом порядке приоритета.
func DisplayName(u *models.User) string {
	if u == nil {
		return ""
	}
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// CreatorDisplayName - то же для сабмишена: привязанный User в приоритете,
// иначе денормализованные поля создателя.
func CreatorDisplayName(s *models.Submission, u *models.User) string {
	if name := DisplayName(u); name != "" {
		return name
	}
	if s.CreatorName != "" {
		return s.CreatorName
	}
	if s.CreatorUsername != "" {
		return s.CreatorUsername
	}
	return s.CreatorEmail
}

// BriefSummaryFor - краткая проекция брифа для вложения в сабмишен.
func BriefSummaryFor(b *models.Brief, owner *models.User) dto.BriefSummary {
	return dto.BriefSummary{
		ID:           b.ID,
		Slug:         BriefSlug(b),
		Title:        b.Title,
		Reward:       RewardFromBrief(b),
		Organization: OrganizationFor(b, owner),
	}
}

// SubmissionToResponse - канонический camelCase-вид сабмишена с проекциями
// родительского брифа и создателя.
func SubmissionToResponse(s *models.Submission, b *models.Brief, briefOwner *models.User, u *models.User) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		ID:                 s.ID,
		BriefID:            s.BriefID,
		Brief:              BriefSummaryFor(b, briefOwner),
		CreatorName:        s.CreatorName,
		CreatorEmail:       s.CreatorEmail,
		CreatorUsername:    optional(s.CreatorUsername),
		CreatorDisplayName: CreatorDisplayName(s, u),
		UserID:             s.UserID,
		VideoURL:           s.VideoURL,
		VideoFileName:      optional(s.VideoFileName),
		VideoMimeType:      optional(s.VideoMimeType),
		VideoSizeBytes:     optionalInt64(s.VideoSizeBytes),
		Status:             s.Status,
		Feedback:           s.Feedback,
		PayoutAmount:       CoerceAmount(s.PayoutAmount),
		PayoutStatus:       s.PayoutStatus,
		SubmittedAt:        s.SubmittedAt,
		ReviewedBy:         s.ReviewedBy,
		ReviewedAt:         s.ReviewedAt,
		ParentSubmissionID: s.ParentSubmissionID,
		SubmissionVersion:  s.SubmissionVersion,
		AllowsResubmission: s.AllowsResubmission,
	}
}

// optional: пустая строка в хранилище - это отсутствующее поле в API (null)
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
