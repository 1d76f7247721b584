package handler

import (
	"net/http"
	"strconv"

	"tourquote/internal/app/calc"
	"tourquote/internal/app/ds"
	"tourquote/internal/app/dto"
	"tourquote/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН СЦЕНАРИИ ============

func draftFromRequest(req dto.ScenarioRequest) repository.ScenarioDraft {
	items := make([]repository.ScenarioItemDraft, len(req.Items))
	for i, it := range req.Items {
		repeats := it.Repeats
		if repeats < 1 {
			repeats = 1
		}
		items[i] = repository.ScenarioItemDraft{
			ServiceID: it.ServiceID,
			Day:       it.Day,
			Kind:      ds.AllocationKind(it.Kind),
			Price:     it.Price,
			Repeats:   repeats,
		}
	}
	return repository.ScenarioDraft{
		Name:         req.Name,
		Days:         req.Days,
		Participants: req.Participants,
		Singles:      req.Singles,
		Description:  req.Description,
		Items:        items,
	}
}

func scenarioToResponse(sc *ds.Scenario, items []ds.ScenarioItem) dto.ScenarioResponse {
	dtoItems := make([]dto.ScenarioItemResponse, len(items))
	for i, it := range items {
		dtoItems[i] = dto.ScenarioItemResponse{
			ID:        it.ID,
			ServiceID: it.ServiceID,
			Day:       it.Day,
			Kind:      string(it.Kind),
			Price:     it.Price,
			Repeats:   it.Repeats,
		}
	}
	return dto.ScenarioResponse{
		ID:           sc.ID,
		Name:         sc.Name,
		Days:         sc.Days,
		Participants: sc.Participants,
		Singles:      sc.Singles,
		Description:  sc.Description,
		CreatedAt:    sc.CreatedAt,
		UpdatedAt:    sc.UpdatedAt,
		Items:        dtoItems,
	}
}

// GetScenarios получает список сценариев пользователя
// @Summary Список сценариев
// @Description Возвращает сценарии текущего пользователя (без позиций)
// @Tags Scenarios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.ScenarioSummary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/scenarios [get]
func (h *APIHandler) GetScenarios(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	scenarios, err := h.Repository.GetScenarios(userID)
	if err != nil {
		logrus.Error("Error getting scenarios: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения сценариев")
		return
	}

	c.JSON(http.StatusOK, scenarios)
}

// GetScenario получает сценарий с позициями
// @Summary Получение сценария
// @Description Возвращает сценарий с позициями. Чужой сценарий неотличим от несуществующего
// @Tags Scenarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сценария"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/scenarios/{id} [get]
func (h *APIHandler) GetScenario(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID сценария")
		return
	}

	scenario, items, err := h.Repository.GetScenario(uint(id), userID)
	if err != nil {
		h.errorResponse(c, repoErrorStatus(err), "Сценарий не найден")
		return
	}

	c.JSON(http.StatusOK, scenarioToResponse(scenario, items))
}

// CreateScenario создает новый сценарий
// @Summary Создание сценария
// @Description Сохраняет сценарий вместе со всеми позициями одной транзакцией
// @Tags Scenarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScenarioRequest true "Сценарий"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/scenarios [post]
func (h *APIHandler) CreateScenario(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	scenario, err := h.Repository.CreateScenario(userID, draftFromRequest(req))
	if err != nil {
		logrus.Error("Error creating scenario: ", err)
		h.errorResponse(c, repoErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"id":     scenario.ID,
	})
}

// UpdateScenario полностью заменяет сценарий
// @Summary Обновление сценария
// @Description Обновляет шапку и полностью перезаписывает позиции (replace, не merge)
// @Tags Scenarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сценария"
// @Param request body dto.ScenarioRequest true "Сценарий"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/scenarios/{id} [put]
func (h *APIHandler) UpdateScenario(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID сценария")
		return
	}

	var req dto.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	err = h.Repository.ReplaceScenario(uint(id), userID, draftFromRequest(req))
	if err != nil {
		logrus.Error("Error updating scenario: ", err)
		h.errorResponse(c, repoErrorStatus(err), err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "Сценарий успешно обновлён", nil)
}

// DeleteScenario удаляет сценарий
// @Summary Удаление сценария
// @Description Удаляет сценарий вместе со всеми позициями
// @Tags Scenarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сценария"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/scenarios/{id} [delete]
func (h *APIHandler) DeleteScenario(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID сценария")
		return
	}

	err = h.Repository.DeleteScenario(uint(id), userID)
	if err != nil {
		h.errorResponse(c, repoErrorStatus(err), "Сценарий не найден")
		return
	}

	h.successResponse(c, http.StatusOK, "Сценарий успешно удалён", nil)
}

// GetScenarioQuote считает стоимость сценария
// @Summary Расчёт стоимости сценария
// @Description Считает стоимость на человека и на группу по сохранённым снапшотам цен, с наценкой агента и без
// @Tags Scenarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID сценария"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/scenarios/{id}/quote [get]
func (h *APIHandler) GetScenarioQuote(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID сценария")
		return
	}

	scenario, items, err := h.Repository.GetScenario(uint(id), userID)
	if err != nil {
		h.errorResponse(c, repoErrorStatus(err), "Сценарий не найден")
		return
	}

	percent, err := h.Repository.GetAgentMarkupPercent()
	if err != nil {
		logrus.Error("Error getting markup percent: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения настроек")
		return
	}

	totals := calc.ComputeTotals(*scenario, items)

	// Округление только здесь, на границе выдачи
	perDay := make([]float64, len(totals.PerDay))
	for i, v := range totals.PerDay {
		perDay[i] = calc.Round2(v)
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		PerPersonTotal:     calc.Round2(totals.PerPersonTotal),
		GroupTotal:         calc.Round2(totals.GroupTotal),
		PerDay:             perDay,
		AgentMarkupPercent: percent,
		PerPersonWithAgent: calc.Round2(calc.ApplyMarkup(totals.PerPersonTotal, percent)),
		GroupWithAgent:     calc.Round2(calc.ApplyMarkup(totals.GroupTotal, percent)),
		AgentReward:        calc.Round2(calc.AgentReward(totals.GroupTotal, percent)),
	})
}
