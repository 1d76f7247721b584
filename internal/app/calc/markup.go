package calc

// Границы наценки агента в процентах
const (
	MinMarkupPercent = 0
	MaxMarkupPercent = 1000
)

// ClampMarkupPercent ограничивает процент наценки адекватным диапазоном
func ClampMarkupPercent(percent float64) float64 {
	if percent < MinMarkupPercent {
		return MinMarkupPercent
	}
	if percent > MaxMarkupPercent {
		return MaxMarkupPercent
	}
	return percent
}

// ApplyMarkup добавляет процент наценки к сумме
func ApplyMarkup(amount, percent float64) float64 {
	return amount * (1 + percent/100)
}

// AgentReward - вознаграждение агента с групповой суммы.
// Считается от тех же percent и groupTotal, что и ApplyMarkup,
// поэтому всегда ApplyMarkup(g, p) - g == AgentReward(g, p).
func AgentReward(groupTotal, percent float64) float64 {
	return groupTotal * percent / 100
}
