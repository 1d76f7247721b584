package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Услуги (каталог) ============

type ServiceResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"` // PER_PERSON, PER_GROUP, PER_TOUR
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Kind  string  `json:"kind" binding:"required,oneof=PER_PERSON PER_GROUP PER_TOUR"`
	Price float64 `json:"price" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name  *string  `json:"name"`
	Kind  *string  `json:"kind" binding:"omitempty,oneof=PER_PERSON PER_GROUP PER_TOUR"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

// ============ Сценарии ============

type ScenarioItemRequest struct {
	ServiceID uint    `json:"service_id" binding:"required"`
	Day       *int    `json:"day"` // null = на весь тур
	Kind      string  `json:"kind" binding:"required,oneof=PER_PERSON PER_GROUP PER_TOUR"`
	Price     float64 `json:"price" binding:"gte=0"`
	Repeats   int     `json:"repeats" binding:"omitempty,gte=1"`
}

type ScenarioRequest struct {
	Name         string                `json:"name"`
	Days         int                   `json:"days" binding:"required,gte=1"`
	Participants int                   `json:"participants" binding:"required,gte=1"`
	Singles      int                   `json:"singles" binding:"gte=0"`
	Description  string                `json:"description"`
	Items        []ScenarioItemRequest `json:"items"`
}

type ScenarioItemResponse struct {
	ID        uint    `json:"id"`
	ServiceID uint    `json:"service_id"`
	Day       *int    `json:"day"`
	Kind      string  `json:"kind"`
	Price     float64 `json:"price"`
	Repeats   int     `json:"repeats"`
}

type ScenarioResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Days         int                    `json:"days"`
	Participants int                    `json:"participants"`
	Singles      int                    `json:"singles"`
	Description  string                 `json:"description"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Items        []ScenarioItemResponse `json:"items"`
}

// ============ Расчёт стоимости ============

type QuoteResponse struct {
	PerPersonTotal     float64   `json:"per_person_total"`
	GroupTotal         float64   `json:"group_total"`
	PerDay             []float64 `json:"per_day"`
	AgentMarkupPercent float64   `json:"agent_markup_percent"`
	PerPersonWithAgent float64   `json:"per_person_with_agent"`
	GroupWithAgent     float64   `json:"group_with_agent"`
	AgentReward        float64   `json:"agent_reward"`
}

// ============ Настройки ============

type SettingsResponse struct {
	AgentMarkupPercent float64 `json:"agent_markup_percent"`
}

type UpdateSettingsRequest struct {
	AgentMarkupPercent float64 `json:"agent_markup_percent" binding:"gte=0"`
}

// ============ Пользователи ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
