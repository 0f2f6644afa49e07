package usecase

import (
	"time"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/service"
)

// TodayDateLayout renders dates such as "Monday, 05 May 2025".
const TodayDateLayout = "Monday, 02 January 2006"

func todayInfo(matcher *service.ScheduleMatcher, now time.Time) dto.TodayInfo {
	english, localized := matcher.Today(now)
	return dto.TodayInfo{
		Day:          english,
		LocalizedDay: localized,
		Date:         now.In(matcher.Location()).Format(TodayDateLayout),
	}
}
