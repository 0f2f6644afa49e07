package entity

import "time"

// Default visiting hours, used when the singleton row does not exist yet.
const (
	DefaultMorningStart   = "10:00"
	DefaultMorningEnd     = "12:00"
	DefaultAfternoonStart = "15:00"
	DefaultAfternoonEnd   = "17:00"
	DefaultVisitingNotes  = "Maksimal 2 orang per pasien"
)

// VisitingHour is a singleton row holding the morning and afternoon visiting
// windows. Times are stored in postgres TIME columns and exchanged as HH:MM.
type VisitingHour struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MorningStart   *string   `gorm:"type:time" json:"morning_start"`
	MorningEnd     *string   `gorm:"type:time" json:"morning_end"`
	AfternoonStart *string   `gorm:"type:time" json:"afternoon_start"`
	AfternoonEnd   *string   `gorm:"type:time" json:"afternoon_end"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VisitingHour) TableName() string {
	return "visiting_hours"
}

// NewDefaultVisitingHour returns the documented default schedule.
func NewDefaultVisitingHour() *VisitingHour {
	morningStart, morningEnd := DefaultMorningStart, DefaultMorningEnd
	afternoonStart, afternoonEnd := DefaultAfternoonStart, DefaultAfternoonEnd
	notes := DefaultVisitingNotes
	return &VisitingHour{
		MorningStart:   &morningStart,
		MorningEnd:     &morningEnd,
		AfternoonStart: &afternoonStart,
		AfternoonEnd:   &afternoonEnd,
		Notes:          &notes,
	}
}
