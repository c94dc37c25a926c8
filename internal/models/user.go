package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);default:'creator'"`
	Username     string
	FirstName    string
	LastName     string
	IsOnboarded  bool `gorm:"default:false"`

	// Профиль организации (для брендов)
	OrgName        string
	OrgSlug        *string `gorm:"uniqueIndex"`
	OrgLogoURL     *string
	OrgWebsite     *string
	OrgDescription *string

	// Relations
	Briefs      []Brief      `gorm:"foreignKey:OwnerID"`
	Submissions []Submission `gorm:"foreignKey:UserID"`
}
