package models

import "time"

type Submission struct {
	BaseModel
	BriefID int64  `gorm:"not null;index"`
	Brief   *Brief `gorm:"foreignKey:BriefID"`

	// Создатель: может быть привязан к User, но всегда несет денормализованные поля
	UserID          *int64 `gorm:"index"`
	User            *User  `gorm:"foreignKey:UserID"`
	CreatorName     string
	CreatorEmail    string
	CreatorUsername string

	VideoURL       string `gorm:"not null"`
	VideoFileName  string
	VideoMimeType  string
	VideoSizeBytes int64

	Status   SubmissionStatus `gorm:"type:varchar(20);default:'PENDING'"`
	Feedback *string

	PayoutAmount string
	PayoutStatus PayoutStatus `gorm:"type:varchar(20);default:'unpaid'"`

	SubmittedAt time.Time `gorm:"default:now();index"`
	ReviewedBy  *string
	ReviewedAt  *time.Time

	// Цепочка пересдач: односвязный список через parent_submission_id,
	// упорядоченный по submission_version
	ParentSubmissionID *int64
	SubmissionVersion  int  `gorm:"default:1"`
	AllowsResubmission bool `gorm:"default:false"`
}
