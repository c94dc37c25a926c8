package models

type Feedback struct {
	BaseModel
	SubmissionID int64       `gorm:"not null;index"`
	Submission   *Submission `gorm:"foreignKey:SubmissionID"`

	AuthorID       *int64
	AuthorName     string
	Comment        string `gorm:"not null"`
	RequiresAction bool   `gorm:"default:false"`
}
