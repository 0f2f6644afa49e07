package dto

type TodayInfo struct {
	Day          string `json:"day"`
	LocalizedDay string `json:"localized_day"`
	Date         string `json:"date"`
}

type DashboardResponse struct {
	Today              TodayInfo              `json:"today"`
	LatestContents     []ContentResponse      `json:"latest_contents"`
	ActiveDoctorsCount int64                  `json:"active_doctors_count"`
	LatestDoctors      []DoctorResponse       `json:"latest_doctors"`
	TodayDoctors       []OnDutyDoctorResponse `json:"today_doctors"`
	VisitingHours      *VisitingHourResponse  `json:"visiting_hours"`
	ContentStats       map[string]int64       `json:"content_stats"`
	TotalContents      int64                  `json:"total_contents"`
	TotalDoctors       int64                  `json:"total_doctors"`
}
