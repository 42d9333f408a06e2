package get_business

import (
	"context"

	"github.com/tmnkv/RSV-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetBusinessPage(ctx context.Context, slug string) (*models.BusinessPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
