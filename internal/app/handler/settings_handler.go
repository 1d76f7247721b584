package handler

import (
	"net/http"

	"tourquote/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ НАСТРОЙКИ ============

// GetSettings возвращает публичные настройки
// @Summary Получение настроек
// @Description Возвращает текущий процент наценки агента (доступно всем)
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings [get]
func (h *APIHandler) GetSettings(c *gin.Context) {
	percent, err := h.Repository.GetAgentMarkupPercent()
	if err != nil {
		logrus.Error("Error getting settings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения настроек")
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{
		AgentMarkupPercent: percent,
	})
}

// UpdateSettings обновляет процент наценки агента
// @Summary Обновление настроек
// @Description Устанавливает процент наценки агента идемпотентным upsert (только для администраторов)
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Настройки"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/settings [put]
func (h *APIHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	percent, err := h.Repository.SetAgentMarkupPercent(req.AgentMarkupPercent)
	if err != nil {
		logrus.Error("Error updating settings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения настроек")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "success",
		"agent_markup_percent": percent,
	})
}
