package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"bountyboard_backend/internal/validator"
	"bountyboard_backend/pkg/apperrors"
)

// BaseHandler содержит общие зависимости всех хендлеров
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON парсит тело запроса и валидирует структуру.
// При ошибке пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON body"))
		return false
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		apperrors.HandleError(c, err)
		return false
	}

	return true
}

// ParseParamInt64 читает числовой path-параметр.
// При ошибке пишет ответ и возвращает false.
func (h *BaseHandler) ParseParamInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s parameter", name)))
		return 0, false
	}
	return id, true
}
