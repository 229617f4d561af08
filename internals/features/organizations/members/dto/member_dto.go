package dto

import (
	"github.com/google/uuid"

	model "presensiku_backend/internals/features/organizations/members/model"
)

/* =========================================
   Request
========================================= */

// Self-register: user_id TIDAK diterima dari body — selalu caller.
type JoinOrganizationRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
}

/* =========================================
   Response
========================================= */

type MemberResponse struct {
	OrganizationMemberID     uuid.UUID        `json:"organization_member_id"`
	OrganizationMemberUserID uuid.UUID        `json:"organization_member_user_id"`
	OrganizationMemberOrgID  uuid.UUID        `json:"organization_member_org_id"`
	OrganizationMemberRole   model.MemberRole `json:"organization_member_role"`
}

func ToMemberResponse(m *model.OrganizationMemberModel) MemberResponse {
	return MemberResponse{
		OrganizationMemberID:     m.OrganizationMemberID,
		OrganizationMemberUserID: m.OrganizationMemberUserID,
		OrganizationMemberOrgID:  m.OrganizationMemberOrgID,
		OrganizationMemberRole:   m.OrganizationMemberRole,
	}
}
