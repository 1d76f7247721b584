package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"tourquote/internal/app/ds"
)

// Простая структура услуги для выдачи наружу
type TourService struct {
	ID       uint
	Name     string
	Kind     ds.AllocationKind
	Price    float64
	ImageURL string
}

const defaultImageURL = "service-placeholder.png"

func toTourService(s ds.Service) TourService {
	imageURL := defaultImageURL
	if s.ImageURL != nil && *s.ImageURL != "" {
		imageURL = *s.ImageURL
	}
	return TourService{
		ID:       s.ID,
		Name:     s.Name,
		Kind:     s.Kind,
		Price:    s.Price,
		ImageURL: imageURL,
	}
}

// Методы для работы с каталогом услуг

// Получить все услуги из БД
func (r *Repository) GetAllServices() ([]TourService, error) {
	var dbServices []ds.Service
	err := r.db.Where("is_deleted = ?", false).Order("id").Find(&dbServices).Error
	if err != nil {
		return nil, err
	}

	services := make([]TourService, len(dbServices))
	for i, s := range dbServices {
		services[i] = toTourService(s)
	}
	return services, nil
}

// Поиск услуг по имени
func (r *Repository) SearchServicesByName(name string) ([]TourService, error) {
	var dbServices []ds.Service
	err := r.db.Where("name ILIKE ? AND is_deleted = ?", "%"+name+"%", false).Find(&dbServices).Error
	if err != nil {
		return nil, err
	}

	services := make([]TourService, len(dbServices))
	for i, s := range dbServices {
		services[i] = toTourService(s)
	}
	return services, nil
}

// Получить услугу по ID
func (r *Repository) GetServiceByID(id uint) (*TourService, error) {
	// Используем курсор
	query := `SELECT id, name, kind, price, image_url
	          FROM services
	          WHERE id = $1 AND is_deleted = false`

	row := r.db.Raw(query, id).Row()

	var dbID uint
	var name, kind string
	var imageURLPtr *string
	var price float64

	err := row.Scan(&dbID, &name, &kind, &price, &imageURLPtr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Возвращаем nil, если записи нет
		}
		return nil, err
	}

	imageURL := defaultImageURL
	if imageURLPtr != nil && *imageURLPtr != "" {
		imageURL = *imageURLPtr
	}

	service := &TourService{
		ID:       dbID,
		Name:     name,
		Kind:     ds.AllocationKind(kind),
		Price:    price,
		ImageURL: imageURL,
	}
	return service, nil
}

func (r *Repository) ServiceExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Service{}).Where("id = ? AND is_deleted = ?", id, false).Count(&count).Error
	return count > 0, err
}

// Создать услугу в каталоге
func (r *Repository) CreateService(name string, kind ds.AllocationKind, price float64) (*ds.Service, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: неизвестный тип распределения %q", ErrValidation, kind)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: цена не может быть отрицательной", ErrValidation)
	}

	service := ds.Service{
		Name:  name,
		Kind:  kind,
		Price: price,
	}
	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// Обновить услугу (nil-поля не трогаем)
func (r *Repository) UpdateService(id uint, name *string, kind *ds.AllocationKind, price *float64) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if kind != nil {
		if !kind.Valid() {
			return fmt.Errorf("%w: неизвестный тип распределения %q", ErrValidation, *kind)
		}
		updates["kind"] = *kind
	}
	if price != nil {
		if *price < 0 {
			return fmt.Errorf("%w: цена не может быть отрицательной", ErrValidation)
		}
		updates["price"] = *price
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Service{}).Where("id = ? AND is_deleted = ?", id, false).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Логическое удаление услуги. Снапшоты в сценариях не затрагиваются.
func (r *Repository) DeleteService(id uint) error {
	result := r.db.Model(&ds.Service{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Сохранить URL изображения услуги
func (r *Repository) UpdateServiceImage(id uint, imageURL string) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("image_url", imageURL).Error
}

// Сбросить изображение услуги
func (r *Repository) DeleteServiceImage(id uint) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("image_url", nil).Error
}
