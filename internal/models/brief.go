package models

import (
	"time"

	"gorm.io/datatypes"
)

type Brief struct {
	BaseModel
	// Slug nullable: легаси-записи без slug обслуживаются по "brief-{id}",
	// backfill-утилита проставляет им постоянный slug.
	Slug         *string `gorm:"uniqueIndex"`
	Title        string  `gorm:"not null"`
	OrgName      string  `gorm:"not null"`
	BusinessLine *string
	State        *string
	Overview     *string
	Requirements datatypes.JSON `gorm:"type:jsonb"`

	DeliverableRatio  string
	DeliverableLength string
	DeliverableFormat string

	RewardType RewardType `gorm:"type:varchar(20)"`
	// Сумма хранится текстом: часть легаси-данных содержит нечисловые значения,
	// маппер приводит к числу при отдаче.
	RewardAmount      string
	RewardCurrency    string
	RewardDescription *string

	Deadline time.Time
	Status   BriefStatus `gorm:"type:varchar(20);default:'PUBLISHED'"`
	Password *string

	MaxWinners               int `gorm:"default:1"`
	MaxSubmissionsPerCreator int `gorm:"default:3"`

	OwnerID *int64 `gorm:"index"`
	Owner   *User  `gorm:"foreignKey:OwnerID"`
}
