package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/handlers"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/models"
)

// SetupRouter собирает gin-роутер со всеми middleware и маршрутами
func SetupRouter(h *handlers.AppHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Публичные маршруты
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/briefs", h.Briefs.List)
	api.GET("/briefs/:slug", h.Briefs.GetBySlug)

	api.GET("/submissions", h.Submissions.ListForBrief)
	api.GET("/submissions/:submissionId/feedback", h.Feedback.ListForSubmission)

	api.POST("/influencers/apply", h.Influencers.Apply)

	// Админские маршруты
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/briefs", h.Briefs.Create)
		admin.PUT("/briefs/:slug", h.Briefs.Update)

		admin.PATCH("/submissions/:submissionId/status", h.Submissions.Review)
		admin.POST("/submissions/:submissionId/feedback", h.Feedback.Create)

		admin.PATCH("/feedback/:feedbackId", h.Feedback.Update)
		admin.DELETE("/feedback/:feedbackId", h.Feedback.Delete)

		admin.GET("/influencers", h.Influencers.List)
		admin.POST("/influencers/:influencerId/status", h.Influencers.UpdateStatus)
	}

	return r
}
