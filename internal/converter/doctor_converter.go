package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// PhotoURL is nil when the doctor has no photo.
func DoctorToResponse(doctor *entity.Doctor, urls URLResolver) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	var photoURL *string
	if doctor.Photo != nil && *doctor.Photo != "" {
		u := urls.URL(*doctor.Photo)
		photoURL = &u
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		Phone:           doctor.Phone,
		Photo:           doctor.Photo,
		PhotoURL:        photoURL,
		Schedule:        ScheduleToResponses(doctor.Schedule),
		ScheduleDisplay: doctor.ScheduleDisplay(),
		IsActive:        doctor.Active(),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor, urls URLResolver) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], urls)
	}
	return responses
}

// PhotoURLOrPlaceholder resolves the public photo URL, falling back to
// placeholder for doctors without a photo.
func PhotoURLOrPlaceholder(photo *string, urls URLResolver, placeholder string) string {
	if photo == nil || *photo == "" {
		return placeholder
	}
	return urls.URL(*photo)
}

func DoctorToFeatured(doctor *entity.Doctor, urls URLResolver, placeholder string) dto.FeaturedDoctorResponse {
	return dto.FeaturedDoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		PhotoURL:       PhotoURLOrPlaceholder(doctor.Photo, urls, placeholder),
	}
}

func DoctorToGuestDetail(doctor *entity.Doctor, urls URLResolver, placeholder string) *dto.GuestDoctorDetailResponse {
	return &dto.GuestDoctorDetailResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		PhotoURL:        PhotoURLOrPlaceholder(doctor.Photo, urls, placeholder),
		Phone:           doctor.Phone,
		Schedule:        ScheduleToResponses(doctor.Schedule),
		ScheduleDisplay: doctor.ScheduleDisplay(),
	}
}
