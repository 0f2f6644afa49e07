package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduleEntry is one weekly practice slot. Day is expected to be an English
// weekday name, Time a free-text range such as "08:00 - 16:00".
type ScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Blank reports whether either side of the entry is empty.
func (e ScheduleEntry) Blank() bool {
	return strings.TrimSpace(e.Day) == "" || strings.TrimSpace(e.Time) == ""
}

type Doctor struct {
	ID             uuid.UUID                         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string                            `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialization string                            `gorm:"type:varchar(255);not null;index" json:"specialization"`
	Photo          *string                           `gorm:"type:varchar(255)" json:"photo,omitempty"`
	Phone          *string                           `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Schedule       datatypes.JSONSlice[ScheduleEntry] `gorm:"type:jsonb" json:"schedule"`
	IsActive       *bool                             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt                    `gorm:"index" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Active treats a missing flag as active, matching the column default.
func (d *Doctor) Active() bool {
	return d.IsActive == nil || *d.IsActive
}

// ScheduleDisplay renders the schedule as "Monday: 08:00-16:00, Friday: 10:00-12:00".
func (d *Doctor) ScheduleDisplay() string {
	parts := make([]string, 0, len(d.Schedule))
	for _, entry := range d.Schedule {
		parts = append(parts, entry.Day+": "+entry.Time)
	}
	return strings.Join(parts, ", ")
}

// CleanSchedule drops entries with a blank day or time, keeping order.
func CleanSchedule(entries []ScheduleEntry) []ScheduleEntry {
	cleaned := make([]ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Blank() {
			continue
		}
		cleaned = append(cleaned, ScheduleEntry{
			Day:  strings.TrimSpace(entry.Day),
			Time: strings.TrimSpace(entry.Time),
		})
	}
	return cleaned
}
