package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/models"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type InfluencerHandler struct {
	*BaseHandler
	influencerService services.InfluencerService
}

func NewInfluencerHandler(base *BaseHandler, influencerService services.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{BaseHandler: base, influencerService: influencerService}
}

// Apply принимает публичную заявку инфлюенсера
// POST /api/v1/influencers/apply
func (h *InfluencerHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.influencerService.Apply(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List возвращает заявки, по умолчанию только ожидающие решения
// GET /api/v1/influencers?status=
func (h *InfluencerHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", string(models.ApplicationStatusPending))

	switch status {
	case services.ApplicationFilterAll,
		string(models.ApplicationStatusPending),
		string(models.ApplicationStatusApproved),
		string(models.ApplicationStatusRejected):
	default:
		apperrors.HandleError(c, apperrors.ErrInvalidStatus("influencer",
			"Invalid status filter: must be one of pending, approved, rejected, all"))
		return
	}

	resp, err := h.influencerService.ListApplications(c.Request.Context(), status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStatus записывает решение админа по заявке
// POST /api/v1/influencers/:influencerId/status
func (h *InfluencerHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseParamInt64(c, "influencerId")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.influencerService.UpdateApplicationStatus(c.Request.Context(), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
