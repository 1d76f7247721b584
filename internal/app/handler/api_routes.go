package handler

import (
	"tourquote/internal/app/middleware"
	"tourquote/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Услуги (каталог) - публичные и для администраторов ============
	services := api.Group("/services")
	{
		// Публичные эндпоинты (без авторизации)
		services.GET("", h.GetServices)    // GET список с поиском
		services.GET("/:id", h.GetService) // GET одна запись

		// Только для администраторов (управление каталогом)
		services.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateService)                // POST создание
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)             // PUT изменение
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)          // DELETE удаление
		services.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadServiceImage) // POST изображение
	}

	// ============ Сценарии - для авторизованных пользователей ============
	scenarios := api.Group("/scenarios")
	scenarios.Use(authMiddleware.WithAuthCheck(role.User, role.Admin))
	{
		scenarios.GET("", h.GetScenarios)
		scenarios.GET("/:id", h.GetScenario)
		scenarios.GET("/:id/quote", h.GetScenarioQuote) // расчёт стоимости на сервере
		scenarios.POST("", h.CreateScenario)
		scenarios.PUT("/:id", h.UpdateScenario)    // полная замена позиций
		scenarios.DELETE("/:id", h.DeleteScenario) // каскадное удаление
	}

	// ============ Настройки ============
	settings := api.Group("/settings")
	{
		settings.GET("", h.GetSettings) // публичный процент наценки
		settings.PUT("", authMiddleware.WithAuthCheck(role.Admin), h.UpdateSettings)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
