package dto

import (
	"kaskelas_backend/internals/features/kas/settings/service"
	"kaskelas_backend/internals/helpers/dbtime"
)

type UpdateSettingsRequest struct {
	StartDate     *string `json:"start_date"     validate:"omitempty,datetime=2006-01-02"`
	WeeklyAmount  *int64  `json:"weekly_amount"  validate:"omitempty,gt=0"`
	LateThreshold *int    `json:"late_threshold" validate:"omitempty,gte=1,lte=52"`
	ClassName     *string `json:"class_name"     validate:"omitempty,min=1,max=120"`
}

func (r UpdateSettingsRequest) ToPatch() service.Patch {
	return service.Patch{
		StartDate:     r.StartDate,
		WeeklyAmount:  r.WeeklyAmount,
		LateThreshold: r.LateThreshold,
		ClassName:     r.ClassName,
	}
}

type SettingsResponse struct {
	StartDate     string `json:"start_date"`
	WeeklyAmount  int64  `json:"weekly_amount"`
	LateThreshold int    `json:"late_threshold"`
	LateAmount    int64  `json:"late_amount"`
	ClassName     string `json:"class_name"`
}

func FromSettings(s service.Settings) SettingsResponse {
	return SettingsResponse{
		StartDate:     dbtime.DateKey(s.StartDate),
		WeeklyAmount:  s.WeeklyAmount,
		LateThreshold: s.LateThreshold,
		LateAmount:    s.LateAmount(),
		ClassName:     s.ClassName,
	}
}
