package role

// Role - роль пользователя в системе
type Role int

const (
	User  Role = iota // обычный пользователь (составляет сценарии)
	Admin             // администратор (каталог услуг и настройки)
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "администратор"
	default:
		return "пользователь"
	}
}
