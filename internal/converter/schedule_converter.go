package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/service"
)

// ScheduleFromRequest maps request entries and drops blank ones.
func ScheduleFromRequest(entries []dto.ScheduleEntryRequest) []entity.ScheduleEntry {
	raw := make([]entity.ScheduleEntry, len(entries))
	for i, entry := range entries {
		raw[i] = entity.ScheduleEntry{Day: entry.Day, Time: entry.Time}
	}
	return entity.CleanSchedule(raw)
}

func ScheduleToResponses(entries []entity.ScheduleEntry) []dto.ScheduleEntryResponse {
	responses := make([]dto.ScheduleEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.ScheduleEntryResponse{Day: entry.Day, Time: entry.Time}
	}
	return responses
}

// OnDutyToResponses converts matcher results. An empty placeholder leaves
// photo_url empty for doctors without a photo.
func OnDutyToResponses(doctors []service.OnDutyDoctor, urls URLResolver, placeholder string) []dto.OnDutyDoctorResponse {
	responses := make([]dto.OnDutyDoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.OnDutyDoctorResponse{
			ID:             doctor.ID,
			Name:           doctor.Name,
			Specialization: doctor.Specialization,
			Phone:          doctor.Phone,
			PhotoURL:       PhotoURLOrPlaceholder(doctor.Photo, urls, placeholder),
			Schedule:       ScheduleToResponses(doctor.Schedule),
		}
	}
	return responses
}
