package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{BaseHandler: base, feedbackService: feedbackService}
}

// ListForSubmission возвращает фидбек по сабмишену, новый первым
// GET /api/v1/submissions/:submissionId/feedback
func (h *FeedbackHandler) ListForSubmission(c *gin.Context) {
	submissionID, ok := h.ParseParamInt64(c, "submissionId")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListForSubmission(c.Request.Context(), submissionID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// Create добавляет комментарий ревьюера к сабмишену
// POST /api/v1/submissions/:submissionId/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	submissionID, ok := h.ParseParamInt64(c, "submissionId")
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(
		c.Request.Context(), submissionID,
		middleware.CallerUserID(c), middleware.CallerName(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// Update правит текст комментария
// PATCH /api/v1/feedback/:feedbackId
func (h *FeedbackHandler) Update(c *gin.Context) {
	feedbackID, ok := h.ParseParamInt64(c, "feedbackId")
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.UpdateFeedback(c.Request.Context(), feedbackID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// Delete удаляет комментарий
// DELETE /api/v1/feedback/:feedbackId
func (h *FeedbackHandler) Delete(c *gin.Context) {
	feedbackID, ok := h.ParseParamInt64(c, "feedbackId")
	if !ok {
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), feedbackID); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
