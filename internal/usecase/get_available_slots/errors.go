package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffMemberNotFound возвращается, когда сотрудник не найден
	ErrStaffMemberNotFound = errors.New("staff member not found")

	// ErrStaffNotQualified возвращается, когда сотрудник не выполняет услугу
	ErrStaffNotQualified = errors.New("staff member does not perform this service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
