package domain

import (
	"fmt"
	"time"

	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer reservation in the system
type Booking struct {
	ID            int64
	BusinessID    int64
	ServiceID     int64
	StaffMemberID *int64 // nil для услуг без персонального мастера (например, столик в ресторане)

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString // start + durationMinutes услуги; буферы в окно не входят
	PartySize   int

	TotalAmount     float64
	SpecialRequests *string
	Status          BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward conflicts and capacity.
// Cancelled and completed bookings are inert.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ConfirmationCode returns the customer-facing confirmation code,
// derived deterministically from the booking id
func (b *Booking) ConfirmationCode() string {
	return fmt.Sprintf("%s%06d", ConfirmationCodePrefix, b.ID)
}

// BusinessBookingsFilter фильтр для получения бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID      int64          // Обязательный параметр
	Date            *time.Time     // Фильтр по дате (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и завершенные бронирования
}
