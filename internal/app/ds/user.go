package ds

// 4. Таблица пользователей
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     int    `gorm:"type:int;not null;default:0"` // 0 - пользователь, 1 - администратор
	FullName string `gorm:"type:varchar(100)"`
}
