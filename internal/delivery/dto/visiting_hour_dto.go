package dto

import "time"

// UpdateVisitingHourRequest replaces the whole record; null clears a field.
// Times use the HH:MM format.
type UpdateVisitingHourRequest struct {
	MorningStart   *string `json:"morning_start" validate:"omitempty,hhmm"`
	MorningEnd     *string `json:"morning_end" validate:"omitempty,hhmm"`
	AfternoonStart *string `json:"afternoon_start" validate:"omitempty,hhmm"`
	AfternoonEnd   *string `json:"afternoon_end" validate:"omitempty,hhmm"`
	Notes          *string `json:"notes" validate:"omitempty,max=500"`
}

type VisitingHourResponse struct {
	MorningStart   *string    `json:"morning_start"`
	MorningEnd     *string    `json:"morning_end"`
	AfternoonStart *string    `json:"afternoon_start"`
	AfternoonEnd   *string    `json:"afternoon_end"`
	Notes          *string    `json:"notes"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
