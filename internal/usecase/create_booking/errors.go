package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffMemberNotFound возвращается, когда сотрудник не найден
	ErrStaffMemberNotFound = errors.New("create_booking: staff member not found")

	// ErrStaffRequired возвращается, когда услуга требует выбора сотрудника
	ErrStaffRequired = errors.New("create_booking: staff member is required for this service")

	// ErrStaffNotQualified возвращается, когда сотрудник не выполняет услугу
	ErrStaffNotQualified = errors.New("create_booking: staff member does not perform this service")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrBusinessClosed возвращается, когда на дату нет расписания или
	// действует исключение-закрытие
	ErrBusinessClosed = errors.New("create_booking: closed on this date")

	// ErrOutsideBusinessHours возвращается, когда запрошенное окно не лежит
	// целиком внутри ни одного окна расписания
	ErrOutsideBusinessHours = errors.New("create_booking: outside business hours")

	// ErrSlotAlreadyBooked возвращается при прямом пересечении с существующей
	// бронью (сотрудник или услуга с capacity 1)
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrNoCapacity возвращается, когда суммарный размер групп в пересекающихся
	// бронях не оставляет мест для запрошенной группы
	ErrNoCapacity = errors.New("create_booking: no capacity left for this time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
