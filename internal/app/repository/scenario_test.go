package repository

import (
	"testing"

	"tourquote/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&ds.User{},
		&ds.Service{},
		&ds.Scenario{},
		&ds.ScenarioItem{},
		&ds.Settings{},
	))

	return NewWithDB(db)
}

func day(d int) *int { return &d }

func sampleDraft() ScenarioDraft {
	return ScenarioDraft{
		Name:         "Алтай, июль",
		Days:         2,
		Participants: 4,
		Singles:      0,
		Description:  "пробный расчёт",
		Items: []ScenarioItemDraft{
			{ServiceID: 1, Day: day(1), Kind: ds.PerPerson, Price: 50, Repeats: 1},
			{ServiceID: 2, Day: day(1), Kind: ds.PerGroup, Price: 200, Repeats: 1},
			{ServiceID: 3, Day: nil, Kind: ds.PerTour, Price: 400, Repeats: 1},
		},
	}
}

func TestCreateAndGetScenario(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	scenario, items, err := repo.GetScenario(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, "Алтай, июль", scenario.Name)
	assert.Equal(t, 2, scenario.Days)
	assert.Equal(t, 4, scenario.Participants)
	assert.Len(t, items, 3)

	// Снапшоты цены и типа скопированы в позиции
	assert.Equal(t, ds.PerGroup, items[1].Kind)
	assert.Equal(t, 200.0, items[1].Price)

	// Порядок детерминирован: позиции по дням первыми, общие по туру в конце
	require.NotNil(t, items[0].Day)
	assert.Equal(t, 1, *items[0].Day)
	assert.Nil(t, items[2].Day)
	assert.Equal(t, ds.PerTour, items[2].Kind)
}

func TestGetScenarioForeignUserNotFound(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	// Чужой сценарий неотличим от несуществующего
	_, _, err = repo.GetScenario(created.ID, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = repo.GetScenario(9999, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateScenarioClampsParticipants(t *testing.T) {
	repo := newTestRepository(t)

	draft := sampleDraft()
	draft.Participants = 25
	draft.Singles = 0

	created, err := repo.CreateScenario(1, draft)
	require.NoError(t, err)

	// 25 участников при вместимости 20: прижимаем, не ошибка
	assert.Equal(t, 20, created.Participants)
}

func TestCreateScenarioValidation(t *testing.T) {
	repo := newTestRepository(t)

	draft := sampleDraft()
	draft.Days = 0
	_, err := repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = sampleDraft()
	draft.Items[0].Repeats = 0
	_, err = repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = sampleDraft()
	draft.Items[0].Price = -5
	_, err = repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = sampleDraft()
	draft.Items[0].Day = day(3) // дней всего 2
	_, err = repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)

	draft = sampleDraft()
	draft.Items[0].Kind = "PER_HOUR"
	_, err = repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)

	// Без дня допустим только расчёт на весь тур
	draft = sampleDraft()
	draft.Items[0].Day = nil
	_, err = repo.CreateScenario(1, draft)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReplaceScenarioRewritesItems(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	replacement := ScenarioDraft{
		Name:         "Алтай, август",
		Days:         3,
		Participants: 6,
		Items: []ScenarioItemDraft{
			{ServiceID: 5, Day: day(3), Kind: ds.PerPerson, Price: 75, Repeats: 1},
		},
	}
	require.NoError(t, repo.ReplaceScenario(created.ID, 7, replacement))

	scenario, items, err := repo.GetScenario(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, "Алтай, август", scenario.Name)
	assert.Equal(t, 3, scenario.Days)

	// Старые позиции полностью заменены, не слиты
	require.Len(t, items, 1)
	assert.Equal(t, uint(5), items[0].ServiceID)
}

func TestReplaceScenarioWithEmptyItems(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	replacement := sampleDraft()
	replacement.Items = nil
	require.NoError(t, repo.ReplaceScenario(created.ID, 7, replacement))

	_, items, err := repo.GetScenario(created.ID, 7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReplaceScenarioForeignUser(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	err = repo.ReplaceScenario(created.ID, 8, sampleDraft())
	assert.ErrorIs(t, err, ErrNotFound)

	// Позиции владельца не тронуты
	_, items, err := repo.GetScenario(created.ID, 7)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestReplaceScenarioInvalidDraftKeepsOldItems(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	bad := sampleDraft()
	bad.Items[1].Repeats = -1
	err = repo.ReplaceScenario(created.ID, 7, bad)
	assert.ErrorIs(t, err, ErrValidation)

	// Замена не началась: старый набор цел
	_, items, err := repo.GetScenario(created.ID, 7)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestDeleteScenarioCascades(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteScenario(created.ID, 7))

	_, _, err = repo.GetScenario(created.ID, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	// Позиций в таблице не осталось
	var count int64
	require.NoError(t, repo.db.Model(&ds.ScenarioItem{}).Where("scenario_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteScenarioForeignUser(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.CreateScenario(7, sampleDraft())
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteScenario(created.ID, 8), ErrNotFound)

	_, _, err = repo.GetScenario(created.ID, 7)
	assert.NoError(t, err)
}

func TestGetScenariosListsOnlyOwn(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.CreateScenario(1, sampleDraft())
	require.NoError(t, err)
	_, err = repo.CreateScenario(1, sampleDraft())
	require.NoError(t, err)
	_, err = repo.CreateScenario(2, sampleDraft())
	require.NoError(t, err)

	summaries, err := repo.GetScenarios(1)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	summaries, err = repo.GetScenarios(3)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
