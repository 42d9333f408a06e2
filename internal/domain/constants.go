package domain

// Default configuration values
const (
	// DefaultSlotGranularityMinutes фиксированный шаг сетки слотов.
	// Шаг намеренно не зависит от длительности услуги: слоты могут
	// пересекаться, финальный арбитр - валидатор при создании брони.
	DefaultSlotGranularityMinutes = 15

	DefaultPartySize = 1
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MinCapacity               = 1
	MaxCapacity               = 100
	MaxPartySize              = 100
	MaxCustomerNameLength     = 200
	MaxSpecialRequestsLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ConfirmationCodePrefix префикс кода подтверждения брони
const ConfirmationCodePrefix = "BK"

// Сообщения, которые генератор слотов отдает клиенту в поле message
const (
	MsgClosedOnThisDay = "закрыто в этот день"
	MsgDateInPast      = "дата в прошлом"
	MsgUnavailable     = "недоступно"
)

// InactiveStatuses список статусов, не участвующих в подсчете конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
