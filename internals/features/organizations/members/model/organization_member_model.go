package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type MemberRole string

const (
	RoleOwner   MemberRole = "owner"
	RoleAdmin   MemberRole = "admin"
	RoleTeacher MemberRole = "teacher" // member biasa
)

// IsPrivileged: owner/admin boleh mutasi entitas milik organisasi.
func (r MemberRole) IsPrivileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r MemberRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleTeacher:
		return true
	}
	return false
}

/* =========================================
   Model: organization_members
   Unik per (user, org); satu role per pasangan.
========================================= */

type OrganizationMemberModel struct {
	OrganizationMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_member_id" json:"organization_member_id"`

	OrganizationMemberUserID uuid.UUID  `gorm:"type:uuid;not null;column:organization_member_user_id" json:"organization_member_user_id"`
	OrganizationMemberOrgID  uuid.UUID  `gorm:"type:uuid;not null;column:organization_member_org_id" json:"organization_member_org_id"`
	OrganizationMemberRole   MemberRole `gorm:"type:varchar(16);not null;default:'teacher';column:organization_member_role" json:"organization_member_role"`

	// Audit
	OrganizationMemberCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:organization_member_created_at" json:"organization_member_created_at"`
	OrganizationMemberUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:organization_member_updated_at" json:"organization_member_updated_at"`
}

func (OrganizationMemberModel) TableName() string { return "organization_members" }
