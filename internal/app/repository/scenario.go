package repository

import (
	"errors"
	"fmt"
	"time"

	"tourquote/internal/app/calc"
	"tourquote/internal/app/ds"

	"gorm.io/gorm"
)

// ScenarioDraft - сценарий в том виде, в котором его присылает клиент
type ScenarioDraft struct {
	Name         string
	Days         int
	Participants int
	Singles      int
	Description  string
	Items        []ScenarioItemDraft
}

type ScenarioItemDraft struct {
	ServiceID uint
	Day       *int // nil = на весь тур
	Kind      ds.AllocationKind
	Price     float64
	Repeats   int
}

// Краткая запись для списка сценариев
type ScenarioSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Days         int       `json:"days"`
	Participants int       `json:"participants"`
	Singles      int       `json:"singles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// validateDraft проверяет черновик и приводит поля с мягкими ограничениями.
// Вместимость и одноместные размещения ограничиваются, а не отклоняются.
func validateDraft(draft *ScenarioDraft) error {
	if draft.Name == "" {
		draft.Name = "Без названия"
	}
	if draft.Days < 1 {
		return fmt.Errorf("%w: количество дней должно быть не меньше 1", ErrValidation)
	}
	draft.Singles = calc.ClampSingles(draft.Singles)
	draft.Participants = calc.ClampParticipants(draft.Participants, draft.Singles)

	for i, it := range draft.Items {
		if !it.Kind.Valid() {
			return fmt.Errorf("%w: позиция %d: неизвестный тип распределения %q", ErrValidation, i+1, it.Kind)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: позиция %d: цена не может быть отрицательной", ErrValidation, i+1)
		}
		if it.Repeats < 1 {
			return fmt.Errorf("%w: позиция %d: количество повторов должно быть не меньше 1", ErrValidation, i+1)
		}
		if it.Day == nil {
			if it.Kind != ds.PerTour {
				return fmt.Errorf("%w: позиция %d: тип %s требует указания дня", ErrValidation, i+1, it.Kind)
			}
		} else if *it.Day < 1 || *it.Day > draft.Days {
			return fmt.Errorf("%w: позиция %d: день %d вне диапазона 1..%d", ErrValidation, i+1, *it.Day, draft.Days)
		}
	}
	return nil
}

// Методы для работы со сценариями.
// Чужой сценарий неотличим от несуществующего: фильтр по владельцу
// стоит прямо в запросе, наружу всегда уходит ErrNotFound.

// Получить список сценариев пользователя (без позиций)
func (r *Repository) GetScenarios(userID uint) ([]ScenarioSummary, error) {
	var scenarios []ds.Scenario
	err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&scenarios).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ScenarioSummary, len(scenarios))
	for i, sc := range scenarios {
		summaries[i] = ScenarioSummary{
			ID:           sc.ID,
			Name:         sc.Name,
			Days:         sc.Days,
			Participants: sc.Participants,
			Singles:      sc.Singles,
			CreatedAt:    sc.CreatedAt,
			UpdatedAt:    sc.UpdatedAt,
		}
	}
	return summaries, nil
}

// Получить сценарий с позициями
func (r *Repository) GetScenario(id, userID uint) (*ds.Scenario, []ds.ScenarioItem, error) {
	var scenario ds.Scenario
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&scenario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var items []ds.ScenarioItem
	// Порядок не зависит от СУБД: сначала позиции по дням, потом общие по туру
	err = r.db.Where("scenario_id = ?", scenario.ID).Order("day IS NULL, day, id").Find(&items).Error
	if err != nil {
		return nil, nil, err
	}

	return &scenario, items, nil
}

// Создать сценарий вместе с позициями одной транзакцией
func (r *Repository) CreateScenario(userID uint, draft ScenarioDraft) (*ds.Scenario, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	scenario := ds.Scenario{
		UserID:       userID,
		Name:         draft.Name,
		Days:         draft.Days,
		Participants: draft.Participants,
		Singles:      draft.Singles,
		Description:  draft.Description,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&scenario).Error; err != nil {
			return err
		}
		return insertItems(tx, scenario.ID, draft.Items)
	})
	if err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Полная замена сценария: шапка обновляется, старые позиции удаляются,
// новые вставляются. Всё в одной транзакции - состояние "шапка без позиций"
// снаружи не наблюдаемо.
func (r *Repository) ReplaceScenario(id, userID uint, draft ScenarioDraft) error {
	if err := validateDraft(&draft); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var scenario ds.Scenario
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&scenario).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		err = tx.Model(&scenario).Updates(map[string]interface{}{
			"name":         draft.Name,
			"days":         draft.Days,
			"participants": draft.Participants,
			"singles":      draft.Singles,
			"description":  draft.Description,
			"updated_at":   time.Now(),
		}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("scenario_id = ?", scenario.ID).Delete(&ds.ScenarioItem{}).Error; err != nil {
			return err
		}
		return insertItems(tx, scenario.ID, draft.Items)
	})
}

// Удалить сценарий с каскадом по позициям
func (r *Repository) DeleteScenario(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var scenario ds.Scenario
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&scenario).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("scenario_id = ?", scenario.ID).Delete(&ds.ScenarioItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&scenario).Error
	})
}

func insertItems(tx *gorm.DB, scenarioID uint, drafts []ScenarioItemDraft) error {
	if len(drafts) == 0 {
		return nil
	}

	items := make([]ds.ScenarioItem, len(drafts))
	for i, it := range drafts {
		items[i] = ds.ScenarioItem{
			ScenarioID: scenarioID,
			ServiceID:  it.ServiceID,
			Day:        it.Day,
			Kind:       it.Kind,
			Price:      it.Price,
			Repeats:    it.Repeats,
		}
	}
	return tx.Create(&items).Error
}
