package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/services/dto"
	"bountyboard_backend/pkg/apperrors"
)

type BriefHandler struct {
	*BaseHandler
	briefService services.BriefService
}

func NewBriefHandler(base *BaseHandler, briefService services.BriefService) *BriefHandler {
	return &BriefHandler{BaseHandler: base, briefService: briefService}
}

// List возвращает все брифы с организацией и счетчиком сабмишенов
// GET /api/v1/briefs
func (h *BriefHandler) List(c *gin.Context) {
	briefs, err := h.briefService.ListBriefs(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, briefs)
}

// GetBySlug возвращает бриф по slug или легаси-ссылке "brief-{id}"
// GET /api/v1/briefs/:slug
func (h *BriefHandler) GetBySlug(c *gin.Context) {
	brief, err := h.briefService.GetBriefBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, brief)
}

// Create создает бриф
// POST /api/v1/briefs
func (h *BriefHandler) Create(c *gin.Context) {
	var req dto.CreateBriefRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brief, err := h.briefService.CreateBrief(c.Request.Context(), middleware.CallerUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brief)
}

// Update обновляет бриф по числовому id
// PUT /api/v1/briefs/:slug
func (h *BriefHandler) Update(c *gin.Context) {
	id, ok := h.ParseParamInt64(c, "slug")
	if !ok {
		return
	}

	var req dto.UpdateBriefRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brief, err := h.briefService.UpdateBrief(c.Request.Context(), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, brief)
}
