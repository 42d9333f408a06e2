package domain

import "github.com/tmnkv/RSV-BookingService/pkg/types"

// Единые правила конфликтов для генератора слотов и валидатора бронирования.
// Оба пути обязаны использовать именно эти функции: независимая перепроверка
// при создании брони защищает от гонок только пока арифметика пересечений
// совпадает байт-в-байт.

// HasStaffOverlap reports whether the staff member already holds an active
// booking overlapping [start, end). Сотрудник - ресурс емкости 1 независимо
// от capacity услуги.
func HasStaffOverlap(bookings []*Booking, staffID int64, start, end types.TimeString) bool {
	for _, b := range bookings {
		if !b.IsActive() || b.StaffMemberID == nil || *b.StaffMemberID != staffID {
			continue
		}
		if types.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// HasServiceOverlap reports whether the service has any active booking
// overlapping [start, end). Используется для услуг с capacity <= 1.
func HasServiceOverlap(bookings []*Booking, serviceID int64, start, end types.TimeString) bool {
	for _, b := range bookings {
		if !b.IsActive() || b.ServiceID != serviceID {
			continue
		}
		if types.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// OverlappingPartySize sums the party sizes of all active bookings of the
// service that overlap [start, end). Для услуг с capacity > 1.
func OverlappingPartySize(bookings []*Booking, serviceID int64, start, end types.TimeString) int {
	total := 0
	for _, b := range bookings {
		if !b.IsActive() || b.ServiceID != serviceID {
			continue
		}
		if types.Overlaps(start, end, b.StartTime, b.EndTime) {
			total += b.PartySize
		}
	}
	return total
}

// SlotConflicts решает, занято ли окно [start, end) для кандидата слота.
// Размер группы на этапе листинга неизвестен, поэтому для capacity > 1 слот
// считается занятым только когда свободных мест не осталось совсем.
func SlotConflicts(bookings []*Booking, service *Service, staffID *int64, start, end types.TimeString) bool {
	if staffID != nil {
		return HasStaffOverlap(bookings, *staffID, start, end)
	}
	if service.Capacity <= 1 {
		return HasServiceOverlap(bookings, service.ID, start, end)
	}
	return OverlappingPartySize(bookings, service.ID, start, end) >= service.Capacity
}

// ExceedsCapacity решает, превысит ли новая бронь с размером группы partySize
// вместимость услуги в окне [start, end)
func ExceedsCapacity(bookings []*Booking, service *Service, partySize int, start, end types.TimeString) bool {
	return OverlappingPartySize(bookings, service.ID, start, end)+partySize > service.Capacity
}
