// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"globalenglish_backend/internals/features/school/academics/model"
	helper "globalenglish_backend/internals/helpers"
)

/* =========================================================
   ACADEMIC PERIOD
========================================================= */

type AcademicPeriodCreateDTO struct {
	AcademicPeriodLabel     string `json:"academic_period_label" validate:"required,min=2,max=80"`
	AcademicPeriodYear      int    `json:"academic_period_year" validate:"required,min=2000,max=2100"`
	AcademicPeriodStartDate string `json:"academic_period_start_date" validate:"required,datetime=2006-01-02"`
	AcademicPeriodEndDate   string `json:"academic_period_end_date" validate:"required,datetime=2006-01-02"`
}

func (p *AcademicPeriodCreateDTO) Normalize() {
	p.AcademicPeriodLabel = strings.TrimSpace(p.AcademicPeriodLabel)
}

func (p *AcademicPeriodCreateDTO) ToModel() (model.AcademicPeriodModel, error) {
	start, err := helper.ParseDate(p.AcademicPeriodStartDate)
	if err != nil {
		return model.AcademicPeriodModel{}, err
	}
	end, err := helper.ParseDate(p.AcademicPeriodEndDate)
	if err != nil {
		return model.AcademicPeriodModel{}, err
	}
	return model.AcademicPeriodModel{
		AcademicPeriodLabel:     p.AcademicPeriodLabel,
		AcademicPeriodYear:      p.AcademicPeriodYear,
		AcademicPeriodStartDate: start,
		AcademicPeriodEndDate:   end,
	}, nil
}

type AcademicPeriodUpdateDTO struct {
	AcademicPeriodLabel     *string `json:"academic_period_label" validate:"omitempty,min=2,max=80"`
	AcademicPeriodStartDate *string `json:"academic_period_start_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicPeriodEndDate   *string `json:"academic_period_end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (p *AcademicPeriodUpdateDTO) ApplyUpdates(ent *model.AcademicPeriodModel) error {
	if p.AcademicPeriodLabel != nil {
		ent.AcademicPeriodLabel = strings.TrimSpace(*p.AcademicPeriodLabel)
	}
	if p.AcademicPeriodStartDate != nil {
		d, err := helper.ParseDate(*p.AcademicPeriodStartDate)
		if err != nil {
			return err
		}
		ent.AcademicPeriodStartDate = d
	}
	if p.AcademicPeriodEndDate != nil {
		d, err := helper.ParseDate(*p.AcademicPeriodEndDate)
		if err != nil {
			return err
		}
		ent.AcademicPeriodEndDate = d
	}
	return nil
}

/* =========================================================
   PROGRAM WEEK
========================================================= */

type ProgramWeekCreateDTO struct {
	ProgramWeekNumber    int    `json:"program_week_number" validate:"required,min=1"`
	ProgramWeekStartDate string `json:"program_week_start_date" validate:"required,datetime=2006-01-02"`
	ProgramWeekEndDate   string `json:"program_week_end_date" validate:"required,datetime=2006-01-02"`
}

func (p *ProgramWeekCreateDTO) ToModel(periodID uuid.UUID) (model.ProgramWeekModel, error) {
	start, err := helper.ParseDate(p.ProgramWeekStartDate)
	if err != nil {
		return model.ProgramWeekModel{}, err
	}
	end, err := helper.ParseDate(p.ProgramWeekEndDate)
	if err != nil {
		return model.ProgramWeekModel{}, err
	}
	return model.ProgramWeekModel{
		ProgramWeekPeriodID:  periodID,
		ProgramWeekNumber:    p.ProgramWeekNumber,
		ProgramWeekStartDate: start,
		ProgramWeekEndDate:   end,
	}, nil
}

// ProgramWeekBulkDTO replaces a period's full set of weeks in one call.
type ProgramWeekBulkDTO struct {
	Weeks []ProgramWeekCreateDTO `json:"weeks" validate:"required,min=1,dive"`
}
