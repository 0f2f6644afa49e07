package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleEntryRequest struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// CreateDoctorRequest is also used for updates: every field is replaced.
// Schedule entries with a blank day or time are dropped, not rejected. A
// missing is_active means active.
type CreateDoctorRequest struct {
	Name           string                 `json:"name" validate:"required,max=255"`
	Specialization string                 `json:"specialization" validate:"required,max=255"`
	Phone          *string                `json:"phone" validate:"omitempty,max=20"`
	Schedule       []ScheduleEntryRequest `json:"schedule"`
	IsActive       *bool                  `json:"is_active"`
}

type UpdateDoctorRequest = CreateDoctorRequest

type DoctorListRequest struct {
	PageRequest
	Search string `json:"search" validate:"omitempty,max=255"`
}

// Response DTOs

type ScheduleEntryResponse struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type DoctorResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Specialization  string                  `json:"specialization"`
	Phone           *string                 `json:"phone"`
	Photo           *string                 `json:"photo"`
	PhotoURL        *string                 `json:"photo_url"`
	Schedule        []ScheduleEntryResponse `json:"schedule"`
	ScheduleDisplay string                  `json:"schedule_display"`
	IsActive        bool                    `json:"is_active"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors  []DoctorResponse `json:"doctors"`
	PageInfo PageInfo         `json:"page_info"`
}

// OnDutyDoctorResponse lists only the schedule entries of the current day.
type OnDutyDoctorResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Specialization string                  `json:"specialization"`
	Phone          *string                 `json:"phone,omitempty"`
	PhotoURL       string                  `json:"photo_url,omitempty"`
	Schedule       []ScheduleEntryResponse `json:"schedule"`
}
