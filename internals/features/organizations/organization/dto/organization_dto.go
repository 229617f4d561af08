package dto

import (
	"strings"

	"github.com/google/uuid"

	model "presensiku_backend/internals/features/organizations/organization/model"
)

/* =========================================
   Request
========================================= */

// Onboarding: org baru + tahun ajaran aktif + membership owner
// untuk pembuatnya, dalam satu transaksi.
type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2,max=160"`
	AcademicYear     int    `json:"academic_year" validate:"required,min=2000,max=2100"`
}

func (r *CreateOrganizationRequest) Normalize() {
	r.OrganizationName = strings.TrimSpace(r.OrganizationName)
}

/* =========================================
   Response
========================================= */

type OrganizationResponse struct {
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	OrganizationSlug string    `json:"organization_slug"`
}

func ToOrganizationResponse(m *model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:   m.OrganizationID,
		OrganizationName: m.OrganizationName,
		OrganizationSlug: m.OrganizationSlug,
	}
}
