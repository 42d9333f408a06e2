// Package availability читает правила расписания и исключения по датам.
// Область видимости двухуровневая: правило либо общее для бизнеса
// (staff_member_id IS NULL), либо персональное для сотрудника.
package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/pkg/dbmetrics"
	"github.com/tmnkv/RSV-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий правил расписания и исключений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRules получает активные правила на день недели: общие правила бизнеса
// и, если указан сотрудник, его персональные правила
func (r *Repository) ListRules(ctx context.Context, businessID int64, staffID *int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "staff_member_id", "day_of_week",
		"start_time", "end_time", "is_active",
	).
		From("availability_rules").
		Where(scopeCondition(businessID, staffID)).
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.BusinessID,
			&rule.StaffMemberID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// FindOverride получает исключение расписания на дату для области видимости.
// Возвращает ErrOverrideNotFound, если исключения нет.
func (r *Repository) FindOverride(ctx context.Context, businessID int64, staffID *int64, date time.Time) (*domain.SpecialAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "staff_member_id", "date", "is_available", "reason",
	).
		From("special_availability").
		Where(scopeCondition(businessID, staffID)).
		Where(squirrel.Eq{"date": date}).
		OrderBy("staff_member_id NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.SpecialAvailability
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.BusinessID,
		&override.StaffMemberID,
		&override.Date,
		&override.IsAvailable,
		&override.Reason,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverride - scan override: %v", ErrScanRow, err)
	}

	return &override, nil
}

// scopeCondition условие области видимости: общие записи бизнеса или
// персональные записи сотрудника
func scopeCondition(businessID int64, staffID *int64) squirrel.Sqlizer {
	businessWide := squirrel.And{
		squirrel.Eq{"business_id": businessID},
		squirrel.Eq{"staff_member_id": nil},
	}
	if staffID == nil {
		return businessWide
	}
	return squirrel.Or{
		businessWide,
		squirrel.Eq{"staff_member_id": *staffID},
	}
}
