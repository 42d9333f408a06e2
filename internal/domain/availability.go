package domain

import (
	"time"

	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// AvailabilityRule represents a recurring weekly opening-hours window.
// Правило либо общее для бизнеса (StaffMemberID == nil), либо персональное
// для сотрудника. Несколько правил на один день недели выражают разрывной
// график (например, утренняя и вечерняя смены).
type AvailabilityRule struct {
	ID            int64
	BusinessID    int64
	StaffMemberID *int64
	DayOfWeek     int // 0 = воскресенье ... 6 = суббота
	StartTime     types.TimeString
	EndTime       types.TimeString // инвариант: StartTime < EndTime
	IsActive      bool
}

// IsStaffScoped returns true if the rule belongs to a specific staff member
func (r *AvailabilityRule) IsStaffScoped() bool {
	return r.StaffMemberID != nil
}

// Contains returns true if [start, end] lies entirely inside the rule window
func (r *AvailabilityRule) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(r.StartTime) && !end.IsAfter(r.EndTime)
}

// SpecialAvailability represents a date-specific exception that overrides
// recurring rules: a full-day closure (IsAvailable == false) or a special
// opening for the business or a single staff member.
type SpecialAvailability struct {
	ID            int64
	BusinessID    int64
	StaffMemberID *int64
	Date          time.Time
	IsAvailable   bool
	Reason        *string
}

// ClosureReason возвращает причину закрытия или текст по умолчанию
func (s *SpecialAvailability) ClosureReason() string {
	if s.Reason != nil && *s.Reason != "" {
		return *s.Reason
	}
	return MsgUnavailable
}
