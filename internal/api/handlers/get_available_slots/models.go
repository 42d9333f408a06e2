package get_available_slots

import (
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	getAvailableSlots "github.com/tmnkv/RSV-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	BusinessID      int64           `json:"businessId"`
	ServiceID       int64           `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
	Message         string          `json:"message,omitempty"` // причина пустого списка
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	StaffMemberID *int64 `json:"staffMemberId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(businessID, serviceID int64, resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			StaffMemberID: slot.StaffMemberID,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BusinessID:      businessID,
		ServiceID:       serviceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Message:         resp.Message,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID, serviceID int64, staffMemberID *int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID:    businessID,
		ServiceID:     serviceID,
		StaffMemberID: staffMemberID,
		Date:          date,
	}, nil
}
