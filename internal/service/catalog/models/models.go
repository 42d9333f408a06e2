package models

import "github.com/tmnkv/RSV-BookingService/internal/domain"

// BusinessPageResponse публичная страница бронирования бизнеса
type BusinessPageResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`

	Services []ServiceResponse     `json:"services"`
	Staff    []StaffMemberResponse `json:"staffMembers"`
}

// ServiceResponse публичные данные услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Capacity        int     `json:"capacity"`
	RequiresStaff   bool    `json:"requiresStaff"`
}

// StaffMemberResponse публичные данные сотрудника с его услугами
type StaffMemberResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ServiceIDs  []int64 `json:"serviceIds"`
}

// FromDomain собирает страницу бизнеса из domain моделей
func FromDomain(b *domain.Business, services []*domain.Service, staff []*domain.StaffMember) *BusinessPageResponse {
	resp := &BusinessPageResponse{
		ID:          b.ID,
		Name:        b.Name,
		Type:        string(b.Type),
		Slug:        b.Slug,
		Description: b.Description,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		City:        b.City,
		PostalCode:  b.PostalCode,
		Services:    make([]ServiceResponse, 0, len(services)),
		Staff:       make([]StaffMemberResponse, 0, len(staff)),
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Capacity:        svc.Capacity,
			RequiresStaff:   svc.RequiresStaff,
		})
	}

	for _, member := range staff {
		serviceIDs := member.ServiceIDs
		if serviceIDs == nil {
			serviceIDs = []int64{}
		}
		resp.Staff = append(resp.Staff, StaffMemberResponse{
			ID:          member.ID,
			Name:        member.Name,
			Description: member.Description,
			ServiceIDs:  serviceIDs,
		})
	}

	return resp
}
