package service

import (
	"time"

	"hospital-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// OnDutyDoctor is a doctor together with the schedule entries that fall on
// the requested day.
type OnDutyDoctor struct {
	ID             uuid.UUID
	Name           string
	Specialization string
	Photo          *string
	Phone          *string
	Schedule       []entity.ScheduleEntry
}

// ScheduleMatcher resolves which doctors practice on a given weekday.
// Schedules may be authored with English day names or with their localized
// alias, both are accepted.
type ScheduleMatcher struct {
	dayNames map[string]string
	location *time.Location
}

// NewScheduleMatcher takes an English -> localized weekday table and the
// timezone that defines "today". A nil location means time.Local.
func NewScheduleMatcher(dayNames map[string]string, location *time.Location) *ScheduleMatcher {
	names := make(map[string]string, len(dayNames))
	for english, localized := range dayNames {
		names[english] = localized
	}
	if location == nil {
		location = time.Local
	}
	return &ScheduleMatcher{dayNames: names, location: location}
}

func (m *ScheduleMatcher) Location() *time.Location {
	return m.location
}

// Localize returns the alias for an English weekday name, or "" if unknown.
func (m *ScheduleMatcher) Localize(english string) string {
	return m.dayNames[english]
}

// Today returns the English and localized weekday names of now in the
// matcher's timezone.
func (m *ScheduleMatcher) Today(now time.Time) (string, string) {
	english := now.In(m.location).Weekday().String()
	return english, m.dayNames[english]
}

// OnDutyToday keeps the active doctors having at least one entry whose day
// equals todayName or todayLocalizedName. Only those entries are returned,
// in their original order.
func (m *ScheduleMatcher) OnDutyToday(doctors []entity.Doctor, todayName, todayLocalizedName string) []OnDutyDoctor {
	result := make([]OnDutyDoctor, 0)
	for i := range doctors {
		doctor := &doctors[i]
		if !doctor.Active() {
			continue
		}

		var matching []entity.ScheduleEntry
		for _, entry := range doctor.Schedule {
			if entry.Day == "" {
				continue
			}
			if entry.Day == todayName || entry.Day == todayLocalizedName {
				matching = append(matching, entry)
			}
		}
		if len(matching) == 0 {
			continue
		}

		result = append(result, OnDutyDoctor{
			ID:             doctor.ID,
			Name:           doctor.Name,
			Specialization: doctor.Specialization,
			Photo:          doctor.Photo,
			Phone:          doctor.Phone,
			Schedule:       matching,
		})
	}
	return result
}

// OnDutyAt is OnDutyToday for the weekday of now.
func (m *ScheduleMatcher) OnDutyAt(doctors []entity.Doctor, now time.Time) []OnDutyDoctor {
	english, localized := m.Today(now)
	return m.OnDutyToday(doctors, english, localized)
}
