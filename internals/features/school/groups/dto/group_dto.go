package dto

import (
	"strings"

	"github.com/google/uuid"

	model "presensiku_backend/internals/features/school/groups/model"
)

/* =========================================
   Request
========================================= */

type CreateGroupRequest struct {
	GroupOrgID          uuid.UUID  `json:"group_org_id" validate:"required"`
	GroupAcademicYearID uuid.UUID  `json:"group_academic_year_id" validate:"required"`
	GroupName           string     `json:"group_name" validate:"required,min=2,max=160"`
	GroupType           string     `json:"group_type" validate:"omitempty,oneof=course workshop"`
	GroupTeacherID      *uuid.UUID `json:"group_teacher_id,omitempty"` // hanya dihormati utk admin/owner
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
	r.GroupType = strings.ToLower(strings.TrimSpace(r.GroupType))
	if r.GroupType == "" {
		r.GroupType = string(model.GroupTypeCourse)
	}
}

// Partial update: hanya field yang dikirim yang diubah.
type UpdateGroupRequest struct {
	GroupName      *string    `json:"group_name,omitempty" validate:"omitempty,min=2,max=160"`
	GroupType      *string    `json:"group_type,omitempty" validate:"omitempty,oneof=course workshop"`
	GroupTeacherID *uuid.UUID `json:"group_teacher_id,omitempty"`
}

func (r *UpdateGroupRequest) Apply(m *model.GroupModel) {
	if r.GroupName != nil {
		m.GroupName = strings.TrimSpace(*r.GroupName)
	}
	if r.GroupType != nil {
		m.GroupType = model.GroupType(strings.ToLower(strings.TrimSpace(*r.GroupType)))
	}
	if r.GroupTeacherID != nil {
		m.GroupTeacherID = *r.GroupTeacherID
	}
}

/* =========================================
   Response
========================================= */

type GroupResponse struct {
	GroupID             uuid.UUID       `json:"group_id"`
	GroupOrgID          uuid.UUID       `json:"group_org_id"`
	GroupAcademicYearID uuid.UUID       `json:"group_academic_year_id"`
	GroupTeacherID      uuid.UUID       `json:"group_teacher_id"`
	GroupName           string          `json:"group_name"`
	GroupType           model.GroupType `json:"group_type"`
}

func ToGroupResponse(m *model.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:             m.GroupID,
		GroupOrgID:          m.GroupOrgID,
		GroupAcademicYearID: m.GroupAcademicYearID,
		GroupTeacherID:      m.GroupTeacherID,
		GroupName:           m.GroupName,
		GroupType:           m.GroupType,
	}
}
