package service

import (
	"testing"
	"time"

	"hospital-portal/config"
	"hospital-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func boolPtr(b bool) *bool { return &b }

func newDoctor(name string, active bool, entries ...entity.ScheduleEntry) entity.Doctor {
	return entity.Doctor{
		ID:             uuid.New(),
		Name:           name,
		Specialization: "Umum",
		IsActive:       boolPtr(active),
		Schedule:       datatypes.JSONSlice[entity.ScheduleEntry](entries),
	}
}

func newMatcher() *ScheduleMatcher {
	return NewScheduleMatcher(config.DefaultDayNames, time.UTC)
}

func TestOnDutyToday_AliasSymmetric(t *testing.T) {
	m := newMatcher()
	english := newDoctor("dr. English", true, entity.ScheduleEntry{Day: "Monday", Time: "08:00-12:00"})
	localized := newDoctor("dr. Lokal", true, entity.ScheduleEntry{Day: "Senin", Time: "13:00-16:00"})
	doctors := []entity.Doctor{english, localized}

	cases := []struct {
		name      string
		today     string
		localized string
	}{
		{"canonical order", "Monday", "Senin"},
		{"swapped order", "Senin", "Monday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := m.OnDutyToday(doctors, tc.today, tc.localized)
			require.Len(t, result, 2)
			assert.Equal(t, english.ID, result[0].ID)
			assert.Equal(t, []entity.ScheduleEntry{{Day: "Monday", Time: "08:00-12:00"}}, result[0].Schedule)
			assert.Equal(t, localized.ID, result[1].ID)
			assert.Equal(t, []entity.ScheduleEntry{{Day: "Senin", Time: "13:00-16:00"}}, result[1].Schedule)
		})
	}
}

func TestOnDutyToday_ExcludesNonMatching(t *testing.T) {
	m := newMatcher()
	doctors := []entity.Doctor{
		newDoctor("dr. Selasa", true, entity.ScheduleEntry{Day: "Tuesday", Time: "08:00"}, entity.ScheduleEntry{Day: "Rabu", Time: "09:00"}),
		newDoctor("dr. Kosong", true),
	}

	assert.Empty(t, m.OnDutyToday(doctors, "Monday", "Senin"))
}

func TestOnDutyToday_KeepsMultipleShiftsInOrder(t *testing.T) {
	m := newMatcher()
	doctor := newDoctor("dr. Dua Shift", true,
		entity.ScheduleEntry{Day: "Friday", Time: "08:00-10:00"},
		entity.ScheduleEntry{Day: "Saturday", Time: "08:00-10:00"},
		entity.ScheduleEntry{Day: "Jumat", Time: "19:00-21:00"},
	)

	result := m.OnDutyToday([]entity.Doctor{doctor}, "Friday", "Jumat")
	require.Len(t, result, 1)
	assert.Equal(t, []entity.ScheduleEntry{
		{Day: "Friday", Time: "08:00-10:00"},
		{Day: "Jumat", Time: "19:00-21:00"},
	}, result[0].Schedule)
}

func TestOnDutyToday_SkipsInactiveDoctors(t *testing.T) {
	m := newMatcher()
	doctors := []entity.Doctor{newDoctor("dr. Cuti", false, entity.ScheduleEntry{Day: "Monday", Time: "08:00"})}

	assert.Empty(t, m.OnDutyToday(doctors, "Monday", "Senin"))
}

func TestOnDutyToday_EmptyRoster(t *testing.T) {
	result := newMatcher().OnDutyToday(nil, "Monday", "Senin")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestOnDutyToday_UnknownLocalizedNameDoesNotMatchBlankDays(t *testing.T) {
	m := newMatcher()
	doctors := []entity.Doctor{newDoctor("dr. Blank", true, entity.ScheduleEntry{Day: "", Time: "08:00"})}

	assert.Empty(t, m.OnDutyToday(doctors, "Monday", ""))
}

func TestToday_UsesConfiguredTimezone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	m := NewScheduleMatcher(config.DefaultDayNames, jakarta)

	// Sunday 20:00 UTC is already Monday in Jakarta.
	now := time.Date(2025, 5, 4, 20, 0, 0, 0, time.UTC)
	english, localized := m.Today(now)

	assert.Equal(t, "Monday", english)
	assert.Equal(t, "Senin", localized)
}

func TestOnDutyAt(t *testing.T) {
	m := newMatcher()
	doctors := []entity.Doctor{newDoctor("dr. Rabu", true, entity.ScheduleEntry{Day: "Rabu", Time: "10:00-12:00"})}

	wednesday := time.Date(2025, 5, 7, 9, 0, 0, 0, time.UTC)
	assert.Len(t, m.OnDutyAt(doctors, wednesday), 1)
	assert.Empty(t, m.OnDutyAt(doctors, wednesday.AddDate(0, 0, 1)))
}

func TestNewScheduleMatcher_CopiesTable(t *testing.T) {
	names := map[string]string{"Monday": "Senin"}
	m := NewScheduleMatcher(names, nil)
	names["Monday"] = "Lundi"

	assert.Equal(t, "Senin", m.Localize("Monday"))
	assert.Equal(t, time.Local, m.Location())
}
