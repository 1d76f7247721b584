package repository

import (
	"testing"

	"tourquote/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceValidatesInput(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.CreateService("Трансфер", "PER_HOUR", 100)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.CreateService("Трансфер", ds.PerGroup, -1)
	assert.ErrorIs(t, err, ErrValidation)

	service, err := repo.CreateService("Трансфер", ds.PerGroup, 1500)
	require.NoError(t, err)
	assert.Equal(t, ds.PerGroup, service.Kind)
}

func TestDeleteServiceIsLogical(t *testing.T) {
	repo := newTestRepository(t)

	service, err := repo.CreateService("Обед", ds.PerPerson, 350)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteService(service.ID))

	// Из каталога услуга пропала
	services, err := repo.GetAllServices()
	require.NoError(t, err)
	assert.Empty(t, services)

	// Повторное удаление - NotFound
	assert.ErrorIs(t, repo.DeleteService(service.ID), ErrNotFound)
}

func TestDeletedServiceDoesNotAffectScenario(t *testing.T) {
	repo := newTestRepository(t)

	service, err := repo.CreateService("Экскурсия", ds.PerGroup, 200)
	require.NoError(t, err)

	draft := ScenarioDraft{
		Name:         "тест",
		Days:         1,
		Participants: 4,
		Items: []ScenarioItemDraft{
			{ServiceID: service.ID, Day: day(1), Kind: service.Kind, Price: service.Price, Repeats: 1},
		},
	}
	created, err := repo.CreateScenario(1, draft)
	require.NoError(t, err)

	// Услуга удалена и переоценена бы не была - в позиции остался снапшот
	require.NoError(t, repo.DeleteService(service.ID))

	_, items, err := repo.GetScenario(created.ID, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 200.0, items[0].Price)
	assert.Equal(t, ds.PerGroup, items[0].Kind)
}

func TestUpdateService(t *testing.T) {
	repo := newTestRepository(t)

	service, err := repo.CreateService("Баня", ds.PerGroup, 3000)
	require.NoError(t, err)

	newPrice := 3500.0
	require.NoError(t, repo.UpdateService(service.ID, nil, nil, &newPrice))

	services, err := repo.GetAllServices()
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, 3500.0, services[0].Price)

	assert.ErrorIs(t, repo.UpdateService(9999, nil, nil, &newPrice), ErrNotFound)
}
