package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{BaseHandler: base, submissionService: submissionService}
}

// ListForBrief возвращает сабмишены брифа
// GET /api/v1/submissions?briefId=
func (h *SubmissionHandler) ListForBrief(c *gin.Context) {
	raw := c.Query("briefId")
	if raw == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("briefId query parameter is required"))
		return
	}

	briefID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || briefID <= 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("briefId must be a positive integer"))
		return
	}

	submissions, err := h.submissionService.ListForBrief(c.Request.Context(), briefID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// Review записывает решение ревьюера по сабмишену
// PATCH /api/v1/submissions/:submissionId/status
func (h *SubmissionHandler) Review(c *gin.Context) {
	id, ok := h.ParseParamInt64(c, "submissionId")
	if !ok {
		return
	}

	var req dto.ReviewSubmissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	submission, err := h.submissionService.ReviewSubmission(c.Request.Context(), id, middleware.CallerName(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
