package types

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd),
// заданных в минутах с начала суток.
//
// Интервалы, которые только касаются границами, НЕ пересекаются:
// - 09:00-10:00 и 10:00-10:30 → нет пересечения
// - 09:00-10:00 и 09:30-10:30 → пересечение (09:30-10:00)
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// OverlapsTime то же самое для TimeString. Невалидные значения никогда не пересекаются.
func OverlapsTime(aStart, aEnd, bStart, bEnd TimeString) bool {
	as, err := aStart.Minutes()
	if err != nil {
		return false
	}
	ae, err := aEnd.Minutes()
	if err != nil {
		return false
	}
	bs, err := bStart.Minutes()
	if err != nil {
		return false
	}
	be, err := bEnd.Minutes()
	if err != nil {
		return false
	}
	return Overlaps(as, ae, bs, be)
}

// DurationMinutes возвращает end - start в минутах
func DurationMinutes(start, end TimeString) (int, error) {
	s, err := start.Minutes()
	if err != nil {
		return 0, err
	}
	e, err := end.Minutes()
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
