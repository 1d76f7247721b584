package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxParticipants(t *testing.T) {
	tests := []struct {
		name    string
		singles int
		want    int
	}{
		{"без одноместных", 0, 20},
		{"три одноместных", 3, 17},
		{"максимум одноместных", 10, 10},
		{"отрицательное прижимается к нулю", -5, 20},
		{"сверх лимита прижимается к десяти", 15, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxParticipants(tt.singles))
		})
	}
}

func TestMaxParticipantsMonotonicAndPositive(t *testing.T) {
	prev := MaxParticipants(0)
	for singles := 1; singles <= MaxSingles; singles++ {
		cur := MaxParticipants(singles)
		assert.LessOrEqual(t, cur, prev, "вместимость не должна расти с ростом одноместных")
		assert.GreaterOrEqual(t, cur, 1)
		prev = cur
	}
}

func TestMaxParticipantsForCustomRooms(t *testing.T) {
	assert.Equal(t, 10, MaxParticipantsFor(0, 5))
	assert.Equal(t, 7, MaxParticipantsFor(3, 5))
	assert.Equal(t, 5, MaxParticipantsFor(9, 5)) // одноместных больше номеров
	assert.Equal(t, 1, MaxParticipantsFor(0, 0)) // без номеров вместимость минимальная
	assert.Equal(t, 1, MaxParticipantsFor(0, -2))
	assert.Equal(t, 1, MaxParticipantsFor(1, 1))
}

func TestClampParticipants(t *testing.T) {
	// 25 участников при 0 одноместных: максимум 20, прижимаем без ошибки
	assert.Equal(t, 20, ClampParticipants(25, 0))
	assert.Equal(t, 17, ClampParticipants(25, 3))
	assert.Equal(t, 4, ClampParticipants(4, 0))
	assert.Equal(t, 1, ClampParticipants(0, 0))
	assert.Equal(t, 1, ClampParticipants(-3, 5))
}
