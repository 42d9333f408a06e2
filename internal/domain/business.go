package domain

import "time"

// BusinessType тип бизнеса
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeHairSalon  BusinessType = "hair_salon"
)

// Business represents a service business (restaurant, salon)
type Business struct {
	ID          int64
	Name        string
	Type        BusinessType
	Slug        string // публичный идентификатор страницы бронирования
	Description *string
	Email       string
	Phone       *string
	Address     *string
	City        *string
	PostalCode  *string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service represents a bookable service unit of a business.
// Для ресторанов услуга моделирует столик: capacity - общее число мест,
// которое одновременно пересекающиеся брони могут занять.
type Service struct {
	ID          int64
	BusinessID  int64
	Name        string
	Description *string

	DurationMinutes     int
	Price               float64
	Capacity            int
	RequiresStaff       bool
	BufferBeforeMinutes int // недоступное для клиента время перед услугой
	BufferAfterMinutes  int // недоступное для клиента время после услуги
	IsActive            bool
}

// TotalSpanMinutes returns the full schedule footprint of one service
// instance: buffers plus the customer-visible duration
func (s *Service) TotalSpanMinutes() int {
	return s.BufferBeforeMinutes + s.DurationMinutes + s.BufferAfterMinutes
}

// StaffMember represents an employee who performs staff-scoped services
type StaffMember struct {
	ID          int64
	BusinessID  int64
	Name        string
	Description *string
	IsActive    bool

	// ServiceIDs услуги, которые сотрудник умеет выполнять.
	// Отсутствие связи означает, что сотрудник услугу не выполняет.
	ServiceIDs []int64
}

// CanPerform returns true if the staff member is linked to the service
func (m *StaffMember) CanPerform(serviceID int64) bool {
	for _, id := range m.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
