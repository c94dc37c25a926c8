package models

import "time"

type InfluencerApplication struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	// Уникальность email - единственная защита от дублей при конкурентных заявках
	Email           string `gorm:"uniqueIndex;not null"`
	Phone           string
	InstagramHandle string `gorm:"not null"`
	TiktokHandle    string
	YoutubeChannel  string

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`

	IDVerified        bool `gorm:"default:false"`
	BankVerified      bool `gorm:"default:false"`
	InstagramVerified bool `gorm:"default:false"`

	AdminNotes      *string
	RejectionReason *string

	AppliedAt  time.Time `gorm:"default:now()"`
	ApprovedAt *time.Time
	RejectedAt *time.Time
}
