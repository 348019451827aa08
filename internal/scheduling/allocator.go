package scheduling

import (
	"sort"
	"time"

	"github.com/frizerhub/Barber-BookingService/pkg/types"
)

// Interval занятый полуоткрытый интервал [Start, End) внутри одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// DayBounds границы рабочего дня, для которого вычисляются слоты.
// Day и Now должны быть приведены к часовому поясу барбершопа.
type DayBounds struct {
	Day           time.Time
	Now           time.Time
	BusinessStart types.TimeString
	BusinessEnd   types.TimeString
	StepMinutes   int

	// LastWindowDay признак последнего дня окна бронирования: в этот день
	// конец рабочего дня опускается до текущего времени + шаг, чтобы нельзя
	// было бронировать произвольно далеко вглубь неполного дня.
	LastWindowDay bool
}

// ListOpenSlots вычисляет упорядоченный список свободных времён начала.
//
// Алгоритм: занятые интервалы сортируются по началу, курсор идёт от начала
// рабочего дня по сетке с шагом StepMinutes; слот выдаётся на каждой границе
// сетки строго раньше начала следующего занятого интервала, после чего курсор
// перепрыгивает на конец интервала (не просто за его начало - частично
// перекрывающиеся подряд идущие записи разной длительности пропускаются целиком).
//
// Занятый интервал, начинающийся ровно на границе сетки, поглощает эту границу.
// Свободный промежуток короче шага не даёт слота.
//
// Функция чистая и никогда не завершается с ошибкой: некорректные входные
// данные дают пустой список.
func ListOpenSlots(bounds DayBounds, booked []Interval) []types.TimeString {
	if bounds.StepMinutes <= 0 {
		return []types.TimeString{}
	}

	origin, err := bounds.BusinessStart.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	end, err := bounds.BusinessEnd.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	step := bounds.StepMinutes
	start := origin
	nowMinutes := bounds.Now.Hour()*60 + bounds.Now.Minute()

	if isSameDay(bounds.Day, bounds.Now) {
		// Сегодня: начало поднимается до ближайшей границы сетки
		// не раньше текущего времени - слотов в прошлом не бывает
		if rounded := alignUp(nowMinutes, origin, step); rounded > start {
			start = rounded
		}
	} else if bounds.LastWindowDay {
		// Последний день окна: конец опускается до текущего времени + шаг
		if cutoff := alignUp(nowMinutes+step, origin, step); cutoff < end {
			end = cutoff
		}
	}

	if start >= end {
		return []types.TimeString{}
	}

	intervals := sortedMinuteIntervals(booked)

	slots := make([]types.TimeString, 0)
	cursor := start

	for _, iv := range intervals {
		if iv.end <= cursor {
			continue
		}
		for cursor < iv.start && cursor < end {
			slots = appendSlot(slots, cursor)
			cursor += step
		}
		if cursor < iv.end {
			cursor = alignUp(iv.end, origin, step)
		}
	}

	for cursor < end {
		slots = appendSlot(slots, cursor)
		cursor += step
	}

	return slots
}

// IsAvailable отвечает, свободен ли интервал [start, start+duration).
//
// Возвращает false, если интервал выходит за конец рабочего дня или
// пересекается (полуоткрытый тест: start < otherEnd && end > otherStart)
// хотя бы с одним занятым интервалом. Используется и для фильтрации слотов
// под конкретную услугу, и для повторной проверки перед записью в БД.
func IsAvailable(start types.TimeString, durationMinutes int, booked []Interval, businessEnd types.TimeString) bool {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	endOfDay, err := businessEnd.Minutes()
	if err != nil {
		return false
	}

	endMinutes := startMinutes + durationMinutes
	if endMinutes > endOfDay {
		return false
	}

	for _, iv := range sortedMinuteIntervals(booked) {
		if startMinutes < iv.end && endMinutes > iv.start {
			return false
		}
	}
	return true
}

// FilterForService оставляет только слоты, в которые помещается услуга
// указанной длительности
func FilterForService(slots []types.TimeString, durationMinutes int, booked []Interval, businessEnd types.TimeString) []types.TimeString {
	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if IsAvailable(slot, durationMinutes, booked, businessEnd) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// minuteInterval занятый интервал в минутах с начала дня
type minuteInterval struct {
	start int
	end   int
}

// sortedMinuteIntervals переводит интервалы в минуты и сортирует по началу.
// Невалидные и вырожденные интервалы пропускаются.
func sortedMinuteIntervals(booked []Interval) []minuteInterval {
	intervals := make([]minuteInterval, 0, len(booked))
	for _, iv := range booked {
		start, err := iv.Start.Minutes()
		if err != nil {
			continue
		}
		end, err := iv.End.Minutes()
		if err != nil || end <= start {
			continue
		}
		intervals = append(intervals, minuteInterval{start: start, end: end})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})
	return intervals
}

// alignUp поднимает value до ближайшей границы сетки origin + k*step
func alignUp(value, origin, step int) int {
	if value <= origin {
		return origin
	}
	offset := value - origin
	return origin + ((offset+step-1)/step)*step
}

func appendSlot(slots []types.TimeString, minutes int) []types.TimeString {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return slots
	}
	return append(slots, ts)
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
