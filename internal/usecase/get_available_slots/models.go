package get_available_slots

import (
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID    int64     // ID бизнеса
	ServiceID     int64     // ID услуги
	StaffMemberID *int64    // ID сотрудника (только для услуг с персональным мастером)
	Date          time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ServiceName     string        // Название услуги
	DurationMinutes int           // Длительность услуги в минутах
	Slots           []domain.Slot // Упорядоченный список доступных слотов
	Message         string        // Причина пустого списка (закрыто, дата в прошлом, исключение)
}
