package create_booking

import (
	"time"

	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID    int64            // ID бизнеса
	ServiceID     int64            // ID услуги
	StaffMemberID *int64           // ID сотрудника (обязателен, если услуга требует мастера)
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone *string          // Телефон клиента (опционально)
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "19:00")
	PartySize     int              // Размер группы; 0 трактуется как 1

	SpecialRequests *string // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64            // ID созданного бронирования
	ConfirmationCode string           // Код подтверждения для клиента
	BusinessID       int64            // ID бизнеса
	ServiceID        int64            // ID услуги
	StaffMemberID    *int64           // ID сотрудника
	CustomerName     string           // Имя клиента
	ServiceName      string           // Название услуги
	StaffName        *string          // Имя сотрудника
	BookingDate      time.Time        // Дата бронирования
	StartTime        types.TimeString // Время начала
	EndTime          types.TimeString // Время окончания
	PartySize        int              // Размер группы
	TotalAmount      float64          // Стоимость
	Status           string           // Статус бронирования

	CreatedAt time.Time // Время создания
}
