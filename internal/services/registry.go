package services

import (
	"database/sql"

	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth        AuthService
	Briefs      BriefService
	Submissions SubmissionService
	Feedback    FeedbackService
	Influencers InfluencerService
}

// NewServiceContainer создает репозитории и сервисы поверх одного
// process-wide пула соединений.
func NewServiceContainer(db *sql.DB, emailProvider email.Provider) *ServiceContainer {
	briefRepo := repositories.NewBriefRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	influencerRepo := repositories.NewInfluencerRepository(db)
	userRepo := repositories.NewUserRepository(db)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		Briefs:      NewBriefService(briefRepo, submissionRepo, userRepo),
		Submissions: NewSubmissionService(submissionRepo, briefRepo, userRepo),
		Feedback:    NewFeedbackService(feedbackRepo, submissionRepo),
		Influencers: NewInfluencerService(influencerRepo, emailProvider),
	}
}
