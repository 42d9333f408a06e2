package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/pkg/ptr"
	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

func rule(start, end types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

func startTimes(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestGenerateSlots_DinnerWindow(t *testing.T) {
	// Столик на ужин: окно 17:00-22:00, услуга 120 минут без буферов.
	// Последний старт, чей след умещается в окно, - 20:00.
	table := &domain.Service{ID: 5, DurationMinutes: 120, Capacity: 4}

	slots, err := generateSlots(
		[]*domain.AvailabilityRule{rule("17:00", "22:00")},
		nil, table, nil, domain.DefaultSlotGranularityMinutes,
	)
	require.NoError(t, err)

	got := startTimes(slots)
	require.Len(t, got, 13)
	assert.Equal(t, "17:00", got[0])
	assert.Equal(t, "20:00", got[len(got)-1])
	assert.Equal(t, "19:00", slots[0].EndTime.String())
}

func TestGenerateSlots_Buffers(t *testing.T) {
	// Буферы резервируются на расписании, но клиенту не показываются:
	// след 10+60+10=80 минут, видимое окно сдвинуто на bufferBefore.
	svc := &domain.Service{
		ID:                  2,
		DurationMinutes:     60,
		Capacity:            1,
		BufferBeforeMinutes: 10,
		BufferAfterMinutes:  10,
	}

	slots, err := generateSlots(
		[]*domain.AvailabilityRule{rule("09:00", "11:00")},
		nil, svc, nil, domain.DefaultSlotGranularityMinutes,
	)
	require.NoError(t, err)

	// След в 80 минут умещается только для курсоров 09:00, 09:15 и 09:30
	require.Len(t, slots, 3)
	assert.Equal(t, "09:10", slots[0].StartTime.String())
	assert.Equal(t, "10:10", slots[0].EndTime.String())
	assert.Equal(t, "09:40", slots[len(slots)-1].StartTime.String())
}

func TestGenerateSlots_SplitShiftDedupe(t *testing.T) {
	// Разрывной график с перекрывающимися окнами: дубликаты по времени
	// начала отбрасываются, результат отсортирован по возрастанию.
	svc := &domain.Service{ID: 1, DurationMinutes: 30, Capacity: 1}

	slots, err := generateSlots(
		[]*domain.AvailabilityRule{
			rule("14:00", "16:00"),
			rule("10:00", "12:00"),
			rule("14:00", "15:00"), // полностью покрыто первым окном
		},
		nil, svc, nil, domain.DefaultSlotGranularityMinutes,
	)
	require.NoError(t, err)

	got := startTimes(slots)
	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate start time %s", s)
	}

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime),
			"slots not sorted at %d", i)
	}

	// Утреннее окно идет первым несмотря на порядок правил
	assert.Equal(t, "10:00", got[0])
}

func TestGenerateSlots_SkipsConflicting(t *testing.T) {
	svc := &domain.Service{ID: 1, DurationMinutes: 60, Capacity: 1}
	staffID := ptr.Ptr(int64(7))

	bookings := []*domain.Booking{
		{
			ServiceID:     1,
			StaffMemberID: staffID,
			StartTime:     "10:00",
			EndTime:       "11:00",
			Status:        domain.StatusConfirmed,
		},
	}

	slots, err := generateSlots(
		[]*domain.AvailabilityRule{rule("09:00", "12:00")},
		bookings, svc, staffID, domain.DefaultSlotGranularityMinutes,
	)
	require.NoError(t, err)

	got := startTimes(slots)
	// Любой слот, пересекающий [10:00, 11:00), отброшен; стык допустим
	assert.Equal(t, []string{"09:00", "11:00"}, got)
	for _, s := range slots {
		assert.Equal(t, staffID, s.StaffMemberID)
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	svc := &domain.Service{ID: 5, DurationMinutes: 90, Capacity: 4}
	rules := []*domain.AvailabilityRule{rule("17:00", "22:00")}

	first, err := generateSlots(rules, nil, svc, nil, domain.DefaultSlotGranularityMinutes)
	require.NoError(t, err)
	second, err := generateSlots(rules, nil, svc, nil, domain.DefaultSlotGranularityMinutes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_WindowTooSmall(t *testing.T) {
	svc := &domain.Service{ID: 1, DurationMinutes: 120, Capacity: 1}

	slots, err := generateSlots(
		[]*domain.AvailabilityRule{rule("10:00", "11:00")},
		nil, svc, nil, domain.DefaultSlotGranularityMinutes,
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
