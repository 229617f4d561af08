package authz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

/* =========================================================
   Resolver — lookup membership dengan hak penuh.

   Predicate visibilitas di scopes.go butuh "org mana saja
   milik caller". Kalau lookup itu sendiri lewat scope member,
   evaluasinya rekursif (policy member → butuh membership →
   policy member → ...). Maka resolver SELALU query tabel
   organization_members langsung, tanpa scope apa pun —
   padanan fungsi SECURITY DEFINER di RLS Postgres.

   Resolver tidak pernah diekspos sebagai route; argumen
   user-nya selalu identitas caller dari token, bukan input client.
========================================================= */

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{DB: db} }

// OrganizationsForUser mengembalikan semua org tempat user terdaftar.
// Tidak pernah "gagal" karena kosong: tanpa membership → slice kosong, nil error.
func (r *Resolver) OrganizationsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.Model(&memberModel.OrganizationMemberModel{}).
		Where("organization_member_user_id = ?", userID).
		Pluck("organization_member_org_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// RoleInOrganization mengembalikan role user pada satu org.
// ok=false kalau tidak ada membership di org itu.
func (r *Resolver) RoleInOrganization(userID, orgID uuid.UUID) (memberModel.MemberRole, bool, error) {
	var m memberModel.OrganizationMemberModel
	err := r.DB.
		Where("organization_member_user_id = ? AND organization_member_org_id = ?", userID, orgID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.OrganizationMemberRole, true, nil
}

// Memberships memuat semua (org, role) milik user sekali jalan —
// dipakai LoadActor supaya satu request cukup satu query membership.
func (r *Resolver) Memberships(userID uuid.UUID) (map[uuid.UUID]memberModel.MemberRole, error) {
	var rows []memberModel.OrganizationMemberModel
	if err := r.DB.
		Where("organization_member_user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]memberModel.MemberRole, len(rows))
	for _, row := range rows {
		out[row.OrganizationMemberOrgID] = row.OrganizationMemberRole
	}
	return out, nil
}
