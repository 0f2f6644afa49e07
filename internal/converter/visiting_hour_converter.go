package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// clockTime trims a postgres TIME value ("10:00:00") to HH:MM.
func clockTime(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	if len(s) > 5 {
		s = s[:5]
	}
	return &s
}

func VisitingHourToResponse(hours *entity.VisitingHour) *dto.VisitingHourResponse {
	if hours == nil {
		return nil
	}

	response := &dto.VisitingHourResponse{
		MorningStart:   clockTime(hours.MorningStart),
		MorningEnd:     clockTime(hours.MorningEnd),
		AfternoonStart: clockTime(hours.AfternoonStart),
		AfternoonEnd:   clockTime(hours.AfternoonEnd),
		Notes:          hours.Notes,
	}
	if !hours.UpdatedAt.IsZero() {
		updatedAt := hours.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}

// ApplyVisitingHourRequest overwrites every field of hours with req.
func ApplyVisitingHourRequest(hours *entity.VisitingHour, req *dto.UpdateVisitingHourRequest) {
	hours.MorningStart = req.MorningStart
	hours.MorningEnd = req.MorningEnd
	hours.AfternoonStart = req.AfternoonStart
	hours.AfternoonEnd = req.AfternoonEnd
	hours.Notes = req.Notes
}
