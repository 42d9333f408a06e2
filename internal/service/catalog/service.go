package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
	"github.com/tmnkv/RSV-BookingService/internal/service/catalog/models"
)

// Service сервис публичного справочника бизнесов
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetBusinessPage собирает публичную страницу бронирования по slug:
// бизнес, его активные услуги и сотрудников с их услугами
func (s *Service) GetBusinessPage(ctx context.Context, slug string) (*models.BusinessPageResponse, error) {
	s.logger.Info("GetBusinessPage: fetching business slug=%s", slug)

	business, err := s.catalogRepo.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusinessPage: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusinessPage: failed to get business slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBusinessPage - failed to get business: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServices(ctx, business.ID)
	if err != nil {
		s.logger.Error("GetBusinessPage: failed to list services for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: GetBusinessPage - failed to list services: %v", ErrInternal, err)
	}

	staff, err := s.catalogRepo.ListStaffMembers(ctx, business.ID)
	if err != nil {
		s.logger.Error("GetBusinessPage: failed to list staff for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: GetBusinessPage - failed to list staff: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessPage: business=%d, %d services, %d staff", business.ID, len(services), len(staff))
	return models.FromDomain(business, services, staff), nil
}
