package dto

import (
	"time"

	"bountyboard_backend/internal/models"
)

// --- Brief Requests ---

type RewardInput struct {
	Type models.RewardType `json:"type" validate:"omitempty,is-reward-type"`
	// Amount принимает число или строку; легаси-клиенты шлют и то и другое
	Amount      interface{} `json:"amount"`
	Currency    string      `json:"currency"`
	Description *string     `json:"description"`
}

type CreateBriefRequest struct {
	Slug         string   `json:"slug" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	OrgName      string   `json:"orgName" validate:"required"`
	BusinessLine *string  `json:"businessLine"`
	State        *string  `json:"state"`
	Overview     *string  `json:"overview"`
	Requirements []string `json:"requirements"`

	DeliverableRatio  *string `json:"deliverableRatio"`
	DeliverableLength *string `json:"deliverableLength"`
	DeliverableFormat *string `json:"deliverableFormat"`

	Reward *RewardInput `json:"reward"`

	Deadline *time.Time          `json:"deadline"`
	Status   *models.BriefStatus `json:"status" validate:"omitempty,is-brief-status"`
	Password *string             `json:"password"`

	MaxWinners               *int `json:"maxWinners" validate:"omitempty,min=1"`
	MaxSubmissionsPerCreator *int `json:"maxSubmissionsPerCreator" validate:"omitempty,min=1"`
}

type UpdateBriefRequest struct {
	Title        *string  `json:"title,omitempty"`
	OrgName      *string  `json:"orgName,omitempty"`
	BusinessLine *string  `json:"businessLine,omitempty"`
	State        *string  `json:"state,omitempty"`
	Overview     *string  `json:"overview,omitempty"`
	Requirements []string `json:"requirements,omitempty"`

	DeliverableRatio  *string `json:"deliverableRatio,omitempty"`
	DeliverableLength *string `json:"deliverableLength,omitempty"`
	DeliverableFormat *string `json:"deliverableFormat,omitempty"`

	Reward *RewardInput `json:"reward,omitempty"`

	Deadline *time.Time          `json:"deadline,omitempty"`
	Status   *models.BriefStatus `json:"status,omitempty" validate:"omitempty,is-brief-status"`

	MaxWinners               *int `json:"maxWinners,omitempty" validate:"omitempty,min=1"`
	MaxSubmissionsPerCreator *int `json:"maxSubmissionsPerCreator,omitempty" validate:"omitempty,min=1"`
}

// --- Brief Responses ---

// Reward - вложенный объект награды, собирается из плоских reward_* колонок.
type Reward struct {
	Type models.RewardType `json:"type"`
	// float64 если сумма парсится, иначе исходная строка как есть
	Amount      interface{} `json:"amount"`
	Currency    string      `json:"currency"`
	Description *string     `json:"description"`
}

// Organization - вложенный объект организации. Поля владельца-юзера имеют
// приоритет над денормализованными полями брифа.
type Organization struct {
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	LogoURL     *string `json:"logoUrl"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}

type BriefResponse struct {
	ID           int64    `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	OrgName      string   `json:"orgName"`
	BusinessLine *string  `json:"businessLine"`
	State        *string  `json:"state"`
	Overview     *string  `json:"overview"`
	Requirements []string `json:"requirements"`

	DeliverableRatio  string `json:"deliverableRatio"`
	DeliverableLength string `json:"deliverableLength"`
	DeliverableFormat string `json:"deliverableFormat"`

	Reward Reward `json:"reward"`

	Deadline time.Time          `json:"deadline"`
	Status   models.BriefStatus `json:"status"`

	MaxWinners               int `json:"maxWinners"`
	MaxSubmissionsPerCreator int `json:"maxSubmissionsPerCreator"`

	OwnerID         *int64        `json:"ownerId"`
	Organization    *Organization `json:"organization,omitempty"`
	SubmissionCount *int64        `json:"submissionCount,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
