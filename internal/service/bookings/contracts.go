package bookings

import (
	"context"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetBusinessByID(ctx context.Context, id int64) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
