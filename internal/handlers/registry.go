package handlers

import (
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/validator"
)

// AppHandlers собирает все хендлеры приложения
type AppHandlers struct {
	Auth        *AuthHandler
	Briefs      *BriefHandler
	Submissions *SubmissionHandler
	Feedback    *FeedbackHandler
	Influencers *InfluencerHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.Auth),
		Briefs:      NewBriefHandler(base, svc.Briefs),
		Submissions: NewSubmissionHandler(base, svc.Submissions),
		Feedback:    NewFeedbackHandler(base, svc.Feedback),
		Influencers: NewInfluencerHandler(base, svc.Influencers),
	}
}
