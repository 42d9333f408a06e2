package domain

import "github.com/tmnkv/RSV-BookingService/pkg/types"

// Slot represents a candidate bookable time window offered to a customer.
// Окно клиентское: буферы услуги уже учтены при генерации, но в Start/End
// не входят.
type Slot struct {
	StartTime     types.TimeString
	EndTime       types.TimeString
	StaffMemberID *int64
}
