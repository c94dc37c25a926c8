package mappers

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/internal/slug"
)

// Дефолты брифа при создании
const (
	DefaultDeliverableRatio  = "9:16"
	DefaultDeliverableLength = "15-30 seconds"
	DefaultDeliverableFormat = "Vertical video"
	DefaultRewardCurrency    = "USD"
	DefaultMaxWinners        = 1
	DefaultMaxSubmissions    = 3
	DefaultDeadlineDays      = 30
)

// CoerceAmount приводит хранимую текстовую сумму к числу.
// Непарсящееся значение отдается исходной строкой как есть.
func CoerceAmount(raw string) interface{} {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// AmountString - обратное преобразование для записи: JSON-сумма
// (число или строка) в текстовую колонку.
func AmountString(v interface{}) string {
	switch a := v.(type) {
	case nil:
		return "0"
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case int:
		return strconv.Itoa(a)
	case int64:
		return strconv.FormatInt(a, 10)
	case json.Number:
		return a.String()
	default:
		return "0"
	}
}

// RequirementsList разворачивает JSONB-колонку в срез строк.
func RequirementsList(raw datatypes.JSON) []string {
	list := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &list)
	}
	return list
}

// RequirementsJSON сериализует требования для записи.
func RequirementsJSON(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	raw, _ := json.Marshal(list)
	return datatypes.JSON(raw)
}

// RewardFromBrief собирает вложенный объект награды из плоских reward_* колонок.
func RewardFromBrief(b *models.Brief) dto.Reward {
	return dto.Reward{
		Type:        b.RewardType,
		Amount:      CoerceAmount(b.RewardAmount),
		Currency:    b.RewardCurrency,
		Description: b.RewardDescription,
	}
}

// OrganizationFor строит вложенный объект организации: поля владельца-юзера
// имеют приоритет, денормализованный org_name брифа - запасной вариант.
func OrganizationFor(b *models.Brief, owner *models.User) *dto.Organization {
	org := &dto.Organization{Name: b.OrgName}
	if owner == nil {
		return org
	}
	if owner.OrgName != "" {
		org.Name = owner.OrgName
	}
	org.Slug = owner.OrgSlug
	org.LogoURL = owner.OrgLogoURL
	org.Website = owner.OrgWebsite
	org.Description = owner.OrgDescription
	return org
}

// BriefSlug возвращает slug брифа, выводя "brief-{id}" для записей без него.
func BriefSlug(b *models.Brief) string {
	if b.Slug != nil && *b.Slug != "" {
		return *b.Slug
	}
	return slug.Fallback(b.ID)
}

// BriefToResponse - канонический camelCase-вид брифа.
// owner может быть nil (left-join семантика списков).
func BriefToResponse(b *models.Brief, owner *models.User) *dto.BriefResponse {
	return &dto.BriefResponse{
		ID:                       b.ID,
		Slug:                     BriefSlug(b),
		Title:                    b.Title,
		OrgName:                  b.OrgName,
		BusinessLine:             b.BusinessLine,
		State:                    b.State,
		Overview:                 b.Overview,
		Requirements:             RequirementsList(b.Requirements),
		DeliverableRatio:         b.DeliverableRatio,
		DeliverableLength:        b.DeliverableLength,
		DeliverableFormat:        b.DeliverableFormat,
		Reward:                   RewardFromBrief(b),
		Deadline:                 b.Deadline,
		Status:                   b.Status,
		MaxWinners:               b.MaxWinners,
		MaxSubmissionsPerCreator: b.MaxSubmissionsPerCreator,
		OwnerID:                  b.OwnerID,
		CreatedAt:                b.CreatedAt,
		UpdatedAt:                b.UpdatedAt,
	}
}

// NewBriefFromCreate применяет дефолты создания и возвращает сущность для записи.
func NewBriefFromCreate(req *dto.CreateBriefRequest, ownerID *int64, now time.Time) *models.Brief {
	b := &models.Brief{
		Slug:                     &req.Slug,
		Title:                    req.Title,
		OrgName:                  req.OrgName,
		BusinessLine:             req.BusinessLine,
		State:                    req.State,
		Overview:                 req.Overview,
		Requirements:             RequirementsJSON(req.Requirements),
		DeliverableRatio:         DefaultDeliverableRatio,
		DeliverableLength:        DefaultDeliverableLength,
		DeliverableFormat:        DefaultDeliverableFormat,
		RewardType:               models.RewardTypeCash,
		RewardAmount:             "0",
		RewardCurrency:           DefaultRewardCurrency,
		Deadline:                 now.AddDate(0, 0, DefaultDeadlineDays),
		Status:                   models.BriefStatusPublished,
		Password:                 req.Password,
		MaxWinners:               DefaultMaxWinners,
		MaxSubmissionsPerCreator: DefaultMaxSubmissions,
		OwnerID:                  ownerID,
	}

	if req.DeliverableRatio != nil {
		b.DeliverableRatio = *req.DeliverableRatio
	}
	if req.DeliverableLength != nil {
		b.DeliverableLength = *req.DeliverableLength
	}
	if req.DeliverableFormat != nil {
		b.DeliverableFormat = *req.DeliverableFormat
	}

	if req.Reward != nil {
		if req.Reward.Type != "" {
			b.RewardType = req.Reward.Type
		}
		if req.Reward.Amount != nil {
			b.RewardAmount = AmountString(req.Reward.Amount)
		}
		if req.Reward.Currency != "" {
			b.RewardCurrency = req.Reward.Currency
		}
		b.RewardDescription = req.Reward.Description
	}

	if req.Deadline != nil {
		b.Deadline = *req.Deadline
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.MaxWinners != nil {
		b.MaxWinners = *req.MaxWinners
	}
	if req.MaxSubmissionsPerCreator != nil {
		b.MaxSubmissionsPerCreator = *req.MaxSubmissionsPerCreator
	}

	return b
}

// ApplyBriefUpdate накладывает патч на загруженную сущность перед полной перезаписью строки.
func ApplyBriefUpdate(b *models.Brief, req *dto.UpdateBriefRequest) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.OrgName != nil {
		b.OrgName = *req.OrgName
	}
	if req.BusinessLine != nil {
		b.BusinessLine = req.BusinessLine
	}
	if req.State != nil {
		b.State = req.State
	}
	if req.Overview != nil {
		b.Overview = req.Overview
	}
	if req.Requirements != nil {
		b.Requirements = RequirementsJSON(req.Requirements)
	}
	if req.DeliverableRatio != nil {
		b.DeliverableRatio = *req.DeliverableRatio
	}
	if req.DeliverableLength != nil {
		b.DeliverableLength = *req.DeliverableLength
	}
	if req.DeliverableFormat != nil {
		b.DeliverableFormat = *req.DeliverableFormat
	}
	if req.Reward != nil {
		if req.Reward.Type != "" {
			b.RewardType = req.Reward.Type
		}
		if req.Reward.Amount != nil {
			b.RewardAmount = AmountString(req.Reward.Amount)
		}
		if req.Reward.Currency != "" {
			b.RewardCurrency = req.Reward.Currency
		}
		if req.Reward.Description != nil {
			b.RewardDescription = req.Reward.Description
		}
	}
	if req.Deadline != nil {
		b.Deadline = *req.Deadline
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.MaxWinners != nil {
		b.MaxWinners = *req.MaxWinners
	}
	if req.MaxSubmissionsPerCreator != nil {
		b.MaxSubmissionsPerCreator = *req.MaxSubmissionsPerCreator
	}
}
