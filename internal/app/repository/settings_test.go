package repository

import (
	"testing"

	"tourquote/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentMarkupDefaultsToZero(t *testing.T) {
	repo := newTestRepository(t)

	percent, err := repo.GetAgentMarkupPercent()
	require.NoError(t, err)
	assert.Zero(t, percent)
}

func TestSetAgentMarkupUpsertSingleRow(t *testing.T) {
	repo := newTestRepository(t)

	saved, err := repo.SetAgentMarkupPercent(10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, saved)

	saved, err = repo.SetAgentMarkupPercent(25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, saved)

	percent, err := repo.GetAgentMarkupPercent()
	require.NoError(t, err)
	assert.Equal(t, 25.0, percent)

	// Повторный upsert не плодит записей
	var count int64
	require.NoError(t, repo.db.Model(&ds.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetAgentMarkupClampsRange(t *testing.T) {
	repo := newTestRepository(t)

	saved, err := repo.SetAgentMarkupPercent(-5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, saved)

	saved, err = repo.SetAgentMarkupPercent(99999)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, saved)
}
