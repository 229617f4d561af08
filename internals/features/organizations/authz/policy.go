package authz

import (
	"github.com/google/uuid"

	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

/* =========================================================
   Inti keputusan policy — fungsi murni, tanpa DB.

   Aturan umum (tenant isolation): SEMUA akses mensyaratkan
   org_id ∈ membership caller. Tidak ada bypass, termasuk
   admin org lain.

   Entitas "owned" (Group, Session, AttendanceRecord, roster):
   - read  : cukup member org
   - write : member org DAN (owner/admin ATAU guru pemilik grup)

   Student: semua member org boleh baca & tulis (resource
   bersama institusi, tidak digate per guru).
========================================================= */

// CanReadOwned: visibilitas entitas ber-org untuk member org.
func CanReadOwned(isMember bool) bool { return isMember }

// CanMutateOwned: mutasi entitas yang terikat ke sebuah grup.
// role/hasRole = hasil RoleIn pada org grup; teacherID = guru pemilik grup.
func CanMutateOwned(role memberModel.MemberRole, hasRole bool, teacherID, userID uuid.UUID) bool {
	if !hasRole {
		return false // bukan member org → tidak pernah boleh
	}
	if role.IsPrivileged() {
		return true
	}
	return teacherID == userID
}

// CanMutateStudent: siswa adalah resource bersama — member org cukup.
func CanMutateStudent(isMember bool) bool { return isMember }

// CanInsertMembership: user hanya boleh insert membership untuk dirinya.
func CanInsertMembership(rowUserID, callerID uuid.UUID) bool {
	return rowUserID == callerID
}
