package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMarkup(t *testing.T) {
	assert.InDelta(t, 110, ApplyMarkup(100, 10), 1e-9)
	assert.InDelta(t, 100, ApplyMarkup(100, 0), 1e-9)
	assert.InDelta(t, 250, ApplyMarkup(200, 25), 1e-9)
}

// Вознаграждение агента всегда равно разнице сумм с наценкой и без:
// обе величины считаются от одних и тех же percent и groupTotal.
func TestMarkupRewardConsistency(t *testing.T) {
	groupTotals := []float64{0, 1, 99.99, 800, 12345.67}
	percents := []float64{0, 5, 10, 33.3, 100, 1000}

	for _, g := range groupTotals {
		for _, p := range percents {
			diff := ApplyMarkup(g, p) - g
			assert.InDelta(t, diff, AgentReward(g, p), 1e-6,
				"groupTotal=%v percent=%v", g, p)
		}
	}
}

func TestClampMarkupPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampMarkupPercent(-10))
	assert.Equal(t, 15.0, ClampMarkupPercent(15))
	assert.Equal(t, 1000.0, ClampMarkupPercent(5000))
}
