package get_available_slots

import (
	"context"
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByBusinessWithFilter получает активные бронирования бизнеса на дату
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочника (бизнесы, услуги, сотрудники)
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id int64) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
	GetStaffMember(ctx context.Context, businessID, staffID int64) (*domain.StaffMember, error)
}

// AvailabilityRepository интерфейс репозитория расписания
type AvailabilityRepository interface {
	ListRules(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityRule, error)
	FindOverride(ctx context.Context, businessID int64, staffID *int64, date time.Time) (*domain.SpecialAvailability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
