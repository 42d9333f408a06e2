package catalog

import (
	"context"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error)
	ListServices(ctx context.Context, businessID int64) ([]*domain.Service, error)
	ListStaffMembers(ctx context.Context, businessID int64) ([]*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
