package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tourquote/internal/app/ds"
	"tourquote/internal/app/dto"
	"tourquote/internal/app/repository"
	"tourquote/internal/app/role"
	"tourquote/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.User, errors.New("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, errors.New("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// repoErrorStatus сопоставляет типизированные ошибки хранилища с HTTP-кодами
func repoErrorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ============ ДОМЕН УСЛУГИ ============

// GetServices получает список услуг
// @Summary Получение каталога услуг
// @Description Возвращает список всех услуг с возможностью поиска по названию
// @Tags Services
// @Produce json
// @Param query query string false "Поиск по названию услуги"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	searchQuery := c.Query("query")

	var services []repository.TourService
	var err error

	if searchQuery == "" {
		services, err = h.Repository.GetAllServices()
	} else {
		services, err = h.Repository.SearchServicesByName(searchQuery)
	}

	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения услуг")
		return
	}

	// Преобразуем в DTO
	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = dto.ServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Kind:     string(s.Kind),
			Price:    s.Price,
			ImageURL: s.ImageURL,
		}
	}

	response := dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	}

	c.JSON(http.StatusOK, response)
}

// GetService получает одну услугу
// @Summary Получение услуги по ID
// @Description Возвращает детальную информацию об услуге
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil || service == nil {
		h.errorResponse(c, http.StatusNotFound, "Услуга не найдена")
		return
	}

	response := dto.ServiceResponse{
		ID:       service.ID,
		Name:     service.Name,
		Kind:     string(service.Kind),
		Price:    service.Price,
		ImageURL: service.ImageURL,
	}

	c.JSON(http.StatusOK, response)
}

// CreateService создает новую услугу
// @Summary Создание услуги
// @Description Создает новую услугу в каталоге (только для администраторов)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	service, err := h.Repository.CreateService(req.Name, ds.AllocationKind(req.Kind), req.Price)
	if err != nil {
		logrus.Error("Error creating service: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка создания услуги")
		return
	}

	response := dto.ServiceResponse{
		ID:       service.ID,
		Name:     service.Name,
		Kind:     string(service.Kind),
		Price:    service.Price,
		ImageURL: "service-placeholder.png", // Дефолтное изображение
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateService обновляет услугу
// @Summary Обновление услуги
// @Description Обновляет данные услуги (только для администраторов)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var kind *ds.AllocationKind
	if req.Kind != nil {
		k := ds.AllocationKind(*req.Kind)
		kind = &k
	}

	err = h.Repository.UpdateService(uint(id), req.Name, kind, req.Price)
	if err != nil {
		logrus.Error("Error updating service: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка обновления услуги")
		return
	}

	h.successResponse(c, http.StatusOK, "Услуга успешно обновлена", nil)
}

// DeleteService удаляет услугу
// @Summary Удаление услуги
// @Description Логически удаляет услугу из каталога. Сохранённые сценарии не затрагиваются: цена и тип скопированы в позиции (только для администраторов)
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	// Сначала получаем услугу чтобы удалить изображение
	service, _ := h.Repository.GetServiceByID(uint(id))
	if service != nil && service.ImageURL != "service-placeholder.png" && service.ImageURL != "" {
		// Удаляем изображение из MinIO
		if h.MinIOClient != nil {
			err := h.MinIOClient.DeleteFile(service.ImageURL)
			if err != nil {
				logrus.Warnf("Failed to delete image from MinIO: %v", err)
			}
		}
		h.Repository.DeleteServiceImage(uint(id))
	}

	// Логическое удаление услуги
	err = h.Repository.DeleteService(uint(id))
	if err != nil {
		logrus.Error("Error deleting service: ", err)
		h.errorResponse(c, repoErrorStatus(err), "Ошибка удаления услуги")
		return
	}

	h.successResponse(c, http.StatusOK, "Услуга успешно удалена", nil)
}

// UploadServiceImage загружает изображение для услуги
// @Summary Загрузка изображения услуги
// @Description Загружает изображение для услуги в MinIO (только для администраторов)
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id}/image [post]
func (h *APIHandler) UploadServiceImage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	// Проверяем существование услуги
	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil || service == nil {
		h.errorResponse(c, http.StatusNotFound, "Услуга не найдена")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище изображений недоступно")
		return
	}

	// Получаем файл из запроса
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	// Удаляем старое изображение, если было
	if service.ImageURL != "" && service.ImageURL != "service-placeholder.png" {
		if err := h.MinIOClient.DeleteFile(service.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image: %v", err)
		}
	}

	// Загружаем новое
	filename, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	if err := h.Repository.UpdateServiceImage(uint(id), filename); err != nil {
		logrus.Error("Error saving image url: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "Изображение успешно загружено", gin.H{
		"image_url": filename,
	})
}
