package ds

// AllocationKind — способ распределения цены услуги по группе
type AllocationKind string

const (
	PerPerson AllocationKind = "PER_PERSON" // за человека (в день)
	PerGroup  AllocationKind = "PER_GROUP"  // за группу (в день)
	PerTour   AllocationKind = "PER_TOUR"   // за группу (единоразово на весь тур)
)

// Valid проверяет, что тип входит в закрытый набор
func (k AllocationKind) Valid() bool {
	switch k {
	case PerPerson, PerGroup, PerTour:
		return true
	}
	return false
}

// 1. Таблица услуг (каталог) - ТОЛЬКО справочная информация
type Service struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Kind      AllocationKind `gorm:"type:varchar(20);not null"` // PER_PERSON, PER_GROUP, PER_TOUR
	Price     float64        `gorm:"type:decimal(12,2);not null;default:0"`
	IsDeleted bool           `gorm:"type:boolean;default:false;not null"`
	ImageURL  *string        `gorm:"type:varchar(255)"` // Nullable
}
