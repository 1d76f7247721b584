package ds

// 3. Таблица позиций сценария (услуга, привязанная ко дню или к туру целиком)
// Цена и тип копируются из каталога при добавлении: сохранённый расчёт
// не должен меняться при редактировании каталога.
type ScenarioItem struct {
	ID         uint           `gorm:"primaryKey"`
	ScenarioID uint           `gorm:"not null;index"`
	ServiceID  uint           `gorm:"not null"`
	Day        *int           // null = на весь тур, иначе 1..Days
	Kind       AllocationKind `gorm:"type:varchar(20);not null"`
	Price      float64        `gorm:"type:decimal(12,2);not null;default:0"`
	Repeats    int            `gorm:"type:int;not null;default:1"`

	Scenario Scenario `gorm:"foreignKey:ScenarioID"`
}
