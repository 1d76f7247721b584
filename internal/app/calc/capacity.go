package calc

// Номерной фонд по умолчанию: 10 двухместных номеров.
// Каждое одноместное размещение занимает одно место, но селит одного человека.
const (
	DoubleRoomCount = 10
	MaxSingles      = DoubleRoomCount
)

// ClampSingles приводит количество одноместных размещений к допустимому диапазону
func ClampSingles(singles int) int {
	if singles < 0 {
		return 0
	}
	if singles > MaxSingles {
		return MaxSingles
	}
	return singles
}

// MaxParticipantsFor - вместимость при произвольном числе двухместных номеров
func MaxParticipantsFor(singles, doubleRooms int) int {
	if doubleRooms < 0 {
		doubleRooms = 0
	}
	if singles < 0 {
		singles = 0
	}
	if singles > doubleRooms {
		singles = doubleRooms
	}
	max := doubleRooms*2 - singles
	if max < 1 {
		return 1
	}
	return max
}

// MaxParticipants возвращает максимальное число участников при заданном
// количестве одноместных размещений для штатного номерного фонда
func MaxParticipants(singles int) int {
	return MaxParticipantsFor(singles, DoubleRoomCount)
}

// ClampParticipants приводит число участников к диапазону [1, MaxParticipants].
// Превышение вместимости не ошибка: значение ограничивается, решение о
// предупреждении принимает вызывающая сторона.
func ClampParticipants(participants, singles int) int {
	if participants < 1 {
		return 1
	}
	if max := MaxParticipants(singles); participants > max {
		return max
	}
	return participants
}
