// file: internals/features/school/calendar/dto/calendar_dto.go
package dto

import (
	"strings"
	"time"

	"globalenglish_backend/internals/features/school/calendar/model"
)

/* =======================
   Holiday requests
======================= */

type HolidayCreateDTO struct {
	HolidayDate        string `json:"holiday_date"        validate:"required,datetime=2006-01-02"`
	HolidayDescription string `json:"holiday_description" validate:"required,min=3"`
}

func (p *HolidayCreateDTO) Normalize() {
	p.HolidayDescription = strings.TrimSpace(p.HolidayDescription)
}

func (p *HolidayCreateDTO) ToModel() model.HolidayModel {
	d, _ := time.Parse("2006-01-02", p.HolidayDate)
	return model.HolidayModel{
		HolidayDate:        d,
		HolidayDescription: p.HolidayDescription,
	}
}

type HolidayUpdateDTO struct {
	HolidayDescription *string `json:"holiday_description,omitempty" validate:"omitempty,min=3"`
}

func (u *HolidayUpdateDTO) ApplyUpdates(ent *model.HolidayModel) {
	if u.HolidayDescription != nil {
		ent.HolidayDescription = strings.TrimSpace(*u.HolidayDescription)
	}
}

/* =======================
   Absence reason requests
======================= */

type AbsenceReasonCreateDTO struct {
	AbsenceReasonName        string  `json:"absence_reason_name"        validate:"required,min=2,max=80"`
	AbsenceReasonDescription *string `json:"absence_reason_description,omitempty"`
	AbsenceReasonIsActive    *bool   `json:"absence_reason_is_active,omitempty"`
}

func (p *AbsenceReasonCreateDTO) ToModel() model.AbsenceReasonModel {
	isActive := true
	if p.AbsenceReasonIsActive != nil {
		isActive = *p.AbsenceReasonIsActive
	}
	return model.AbsenceReasonModel{
		AbsenceReasonName:        p.AbsenceReasonName,
		AbsenceReasonDescription: p.AbsenceReasonDescription,
		AbsenceReasonIsActive:    isActive,
	}
}

type AbsenceReasonUpdateDTO struct {
	AbsenceReasonName        *string `json:"absence_reason_name,omitempty" validate:"omitempty,min=2,max=80"`
	AbsenceReasonDescription *string `json:"absence_reason_description,omitempty"`
	AbsenceReasonIsActive    *bool   `json:"absence_reason_is_active,omitempty"`
}

func (u *AbsenceReasonUpdateDTO) ApplyUpdates(ent *model.AbsenceReasonModel) {
	if u.AbsenceReasonName != nil {
		ent.AbsenceReasonName = *u.AbsenceReasonName
	}
	if u.AbsenceReasonDescription != nil {
		ent.AbsenceReasonDescription = u.AbsenceReasonDescription
	}
	if u.AbsenceReasonIsActive != nil {
		ent.AbsenceReasonIsActive = *u.AbsenceReasonIsActive
	}
}
