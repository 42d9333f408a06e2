package create_booking

import (
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	createBooking "github.com/tmnkv/RSV-BookingService/internal/usecase/create_booking"
	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BusinessID      int64   `json:"businessId"`
	ServiceID       int64   `json:"serviceId"`
	StaffMemberID   *int64  `json:"staffMemberId,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "19:00"
	PartySize       int     `json:"partySize,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	BusinessID       int64   `json:"businessId"`
	ServiceID        int64   `json:"serviceId"`
	StaffMemberID    *int64  `json:"staffMemberId,omitempty"`
	CustomerName     string  `json:"customerName"`
	ServiceName      string  `json:"serviceName"`
	StaffName        *string `json:"staffName,omitempty"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	PartySize        int     `json:"partySize"`
	TotalAmount      float64 `json:"totalAmount"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BusinessID:      r.BusinessID,
		ServiceID:       r.ServiceID,
		StaffMemberID:   r.StaffMemberID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Date:            bookingDate,
		StartTime:       startTime,
		PartySize:       r.PartySize,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
		BusinessID:       resp.BusinessID,
		ServiceID:        resp.ServiceID,
		StaffMemberID:    resp.StaffMemberID,
		CustomerName:     resp.CustomerName,
		ServiceName:      resp.ServiceName,
		StaffName:        resp.StaffName,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		PartySize:        resp.PartySize,
		TotalAmount:      resp.TotalAmount,
		Status:           resp.Status,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
