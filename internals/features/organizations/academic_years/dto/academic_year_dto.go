package dto

import (
	"github.com/google/uuid"

	model "presensiku_backend/internals/features/organizations/academic_years/model"
)

type CreateAcademicYearRequest struct {
	AcademicYearOrgID    uuid.UUID `json:"academic_year_org_id" validate:"required"`
	AcademicYearYear     int       `json:"academic_year_year" validate:"required,min=2000,max=2100"`
	AcademicYearIsActive bool      `json:"academic_year_is_active"`
}

func (r *CreateAcademicYearRequest) ToModel() *model.AcademicYearModel {
	return &model.AcademicYearModel{
		AcademicYearOrgID:    r.AcademicYearOrgID,
		AcademicYearYear:     r.AcademicYearYear,
		AcademicYearIsActive: r.AcademicYearIsActive,
	}
}

type AcademicYearResponse struct {
	AcademicYearID       uuid.UUID `json:"academic_year_id"`
	AcademicYearOrgID    uuid.UUID `json:"academic_year_org_id"`
	AcademicYearYear     int       `json:"academic_year_year"`
	AcademicYearIsActive bool      `json:"academic_year_is_active"`
}

func ToAcademicYearResponse(m *model.AcademicYearModel) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:       m.AcademicYearID,
		AcademicYearOrgID:    m.AcademicYearOrgID,
		AcademicYearYear:     m.AcademicYearYear,
		AcademicYearIsActive: m.AcademicYearIsActive,
	}
}
