package get_available_slots

import (
	"sort"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// generateSlots генерирует упорядоченный список доступных слотов по всем
// правилам расписания на день.
//
// Внутри одного окна правила курсор идет с фиксированным шагом granularity.
// Каждая позиция курсора резервирует полный след услуги
// (bufferBefore + duration + bufferAfter), но клиенту отдается только
// видимое окно [cursor+bufferBefore, cursor+bufferBefore+duration] -
// буферы заняты на расписании, но в слот не входят.
//
// Результаты по нескольким правилам (разрывной график) сливаются,
// дедуплицируются по времени начала (первое вхождение выигрывает)
// и сортируются по возрастанию.
func generateSlots(
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	service *domain.Service,
	staffID *int64,
	granularityMinutes int,
) ([]domain.Slot, error) {
	totalSpan := service.TotalSpanMinutes()

	slots := make([]domain.Slot, 0)
	seen := make(map[types.TimeString]struct{})

	for _, rule := range rules {
		ruleSlots, err := generateRuleSlots(rule, bookings, service, staffID, totalSpan, granularityMinutes)
		if err != nil {
			return nil, err
		}

		// Дедупликация по времени начала: первое вхождение выигрывает
		for _, slot := range ruleSlots {
			if _, ok := seen[slot.StartTime]; ok {
				continue
			}
			seen[slot.StartTime] = struct{}{}
			slots = append(slots, slot)
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots, nil
}

// generateRuleSlots генерирует слоты внутри одного окна правила
func generateRuleSlots(
	rule *domain.AvailabilityRule,
	bookings []*domain.Booking,
	service *domain.Service,
	staffID *int64,
	totalSpan int,
	granularityMinutes int,
) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	cursor := rule.StartTime
	for {
		// Полный след услуги должен уместиться до конца окна правила
		spanEnd, err := cursor.AddMinutes(totalSpan)
		if err != nil || spanEnd.IsAfter(rule.EndTime) {
			break
		}

		slotStart, err := cursor.AddMinutes(service.BufferBeforeMinutes)
		if err != nil {
			break
		}
		slotEnd, err := slotStart.AddMinutes(service.DurationMinutes)
		if err != nil {
			break
		}

		// Кандидат отбрасывается при конфликте с активными бронями
		if !domain.SlotConflicts(bookings, service, staffID, slotStart, slotEnd) {
			slots = append(slots, domain.Slot{
				StartTime:     slotStart,
				EndTime:       slotEnd,
				StaffMemberID: staffID,
			})
		}

		next, err := cursor.AddMinutes(granularityMinutes)
		if err != nil {
			break
		}
		cursor = next
	}

	return slots, nil
}
