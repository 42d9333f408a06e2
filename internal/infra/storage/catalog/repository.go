// Package catalog читает справочные данные бронирования: бизнесы, услуги,
// сотрудников и их связи с услугами. Ядро доступности использует эти данные
// только на чтение - управление справочником лежит на владельце бизнеса.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/pkg/dbmetrics"
	"github.com/tmnkv/RSV-BookingService/pkg/psqlbuilder"
)

var businessColumns = []string{
	"id", "name", "type", "slug", "description",
	"email", "phone", "address", "city", "postal_code",
	"is_active", "created_at", "updated_at",
}

var serviceColumns = []string{
	"id", "business_id", "name", "description",
	"duration_minutes", "price", "capacity", "requires_staff",
	"buffer_before_minutes", "buffer_after_minutes", "is_active",
}

var staffColumns = []string{
	"id", "business_id", "name", "description", "is_active",
}

// Repository репозиторий справочных данных
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessByID получает активный бизнес по ID
func (r *Repository) GetBusinessByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getBusiness(ctx, squirrel.Eq{"id": id})
}

// GetBusinessBySlug получает активный бизнес по публичному slug
func (r *Repository) GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	return r.getBusiness(ctx, squirrel.Eq{"slug": slug})
}

func (r *Repository) getBusiness(ctx context.Context, where squirrel.Eq) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where["is_active"] = true
	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBusiness - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Business
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Name,
		&b.Type,
		&b.Slug,
		&b.Description,
		&b.Email,
		&b.Phone,
		&b.Address,
		&b.City,
		&b.PostalCode,
		&b.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBusiness - scan business: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// GetService получает активную услугу бизнеса
func (r *Repository) GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "business_id": businessID, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListServices получает активные услуги бизнеса, отсортированные по имени
func (r *Repository) ListServices(ctx context.Context, businessID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"business_id": businessID, "is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetStaffMember получает активного сотрудника бизнеса вместе со списком
// услуг, которые он выполняет
func (r *Repository) GetStaffMember(ctx context.Context, businessID, staffID int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": staffID, "business_id": businessID, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffMember - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.StaffMember
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.BusinessID,
		&m.Name,
		&m.Description,
		&m.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffMember - scan staff member: %v", ErrScanRow, err)
	}

	serviceIDs, err := r.listStaffServiceIDs(ctx, executor, m.ID)
	if err != nil {
		return nil, err
	}
	m.ServiceIDs = serviceIDs

	return &m, nil
}

// ListStaffMembers получает активных сотрудников бизнеса со связями услуг
func (r *Repository) ListStaffMembers(ctx context.Context, businessID int64) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"business_id": businessID, "is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffMembers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffMembers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Description, &m.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListStaffMembers - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffMembers - rows error: %v", ErrScanRow, err)
	}

	for _, m := range members {
		serviceIDs, err := r.listStaffServiceIDs(ctx, executor, m.ID)
		if err != nil {
			return nil, err
		}
		m.ServiceIDs = serviceIDs
	}

	return members, nil
}

func (r *Repository) listStaffServiceIDs(ctx context.Context, executor dbmetrics.DBExecutor, staffID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("service_id").
		From("staff_services").
		Where(squirrel.Eq{"staff_member_id": staffID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listStaffServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listStaffServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: listStaffServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listStaffServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	err := row.Scan(
		&svc.ID,
		&svc.BusinessID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Capacity,
		&svc.RequiresStaff,
		&svc.BufferBeforeMinutes,
		&svc.BufferAfterMinutes,
		&svc.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
