package calc

import (
	"math"

	"tourquote/internal/app/ds"
)

// Totals - итоги расчёта стоимости тура (без наценки агента)
type Totals struct {
	PerPersonTotal float64   // на одного человека за весь тур
	GroupTotal     float64   // на всю группу
	PerDay         []float64 // на человека по дням, индекс 0 = день 1
}

// Round2 округляет до копеек. Применяется только на границе выдачи,
// накопление идёт без округления.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals считает стоимость сценария по снапшотам цен в позициях.
// Каталог не опрашивается: удаление или переоценка услуги не меняет
// сохранённый расчёт.
func ComputeTotals(sc ds.Scenario, items []ds.ScenarioItem) Totals {
	days := sc.Days
	if days < 1 {
		days = 1
	}

	t := Totals{PerDay: make([]float64, days)}

	// Деление на ноль участников не определено: считаем всё нулём
	participants := sc.Participants
	if participants < 1 {
		return t
	}

	for _, it := range items {
		repeats := it.Repeats
		if repeats < 1 {
			repeats = 1
		}
		cost := it.Price * float64(repeats)

		if it.Day == nil {
			// Без дня допустим только расчёт на весь тур: делим на группу
			if it.Kind == ds.PerTour {
				t.PerPersonTotal += cost / float64(participants)
			}
			continue
		}

		d := *it.Day
		if d < 1 || d > days {
			continue // позиция вне диапазона дней не учитывается
		}

		switch it.Kind {
		case ds.PerPerson:
			t.PerDay[d-1] += cost
		case ds.PerGroup:
			t.PerDay[d-1] += cost / float64(participants)
		default:
			// PER_TOUR с привязкой ко дню - некорректные данные, игнорируем
		}
	}

	for _, dayCost := range t.PerDay {
		t.PerPersonTotal += dayCost
	}
	t.GroupTotal = t.PerPersonTotal * float64(participants)

	return t
}
