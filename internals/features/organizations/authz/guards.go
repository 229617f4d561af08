package authz

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "presensiku_backend/internals/features/school/groups/model"
	sessionModel "presensiku_backend/internals/features/attendance/sessions/model"
)

/* =========================================================
   Guard mutasi (padanan policy INSERT/UPDATE/DELETE RLS).
   Menolak keras (403/404), dievaluasi SEBELUM data disentuh.

   Baris di luar org caller di-404-kan, bukan 403 — dari sisi
   caller baris itu memang "tidak ada".
========================================================= */

var ErrNotAuthorized = fiber.NewError(fiber.StatusForbidden, "Acceso no autorizado")

// EnsureMember: syarat minimum semua operasi ber-org.
func EnsureMember(a *Actor, orgID uuid.UUID) error {
	if !a.IsMember(orgID) {
		return ErrNotAuthorized
	}
	return nil
}

// EnsureAdmin: owner/admin pada org tsb.
func EnsureAdmin(a *Actor, orgID uuid.UUID) error {
	if !a.IsAdminIn(orgID) {
		return ErrNotAuthorized
	}
	return nil
}

// FindVisibleGroup memuat grup DI DALAM scope caller.
// Grup milik org lain (atau tidak ada) → 404, tanpa membedakan keduanya.
func FindVisibleGroup(db *gorm.DB, a *Actor, groupID uuid.UUID) (*groupModel.GroupModel, error) {
	var g groupModel.GroupModel
	err := db.Scopes(ScopeGroups(a)).
		Where("group_id = ?", groupID).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return nil, err
	}
	return &g, nil
}

// EnsureCanManageGroup: mutasi grup & semua turunannya
// (sesi, record absensi, roster) — owner/admin org ATAU guru pemilik.
func EnsureCanManageGroup(db *gorm.DB, a *Actor, groupID uuid.UUID) (*groupModel.GroupModel, error) {
	g, err := FindVisibleGroup(db, a, groupID)
	if err != nil {
		return nil, err
	}
	role, ok := a.RoleIn(g.GroupOrgID)
	if !CanMutateOwned(role, ok, g.GroupTeacherID, a.UserID) {
		return nil, ErrNotAuthorized
	}
	return g, nil
}

// EnsureCanManageSession: otorisasi record absensi diwarisi
// transitif lewat Session → Group.
func EnsureCanManageSession(db *gorm.DB, a *Actor, sessionID uuid.UUID) (*sessionModel.SessionModel, error) {
	var s sessionModel.SessionModel
	err := db.Scopes(ScopeSessions(a)).
		Where("session_id = ?", sessionID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, err
	}
	if _, err := EnsureCanManageGroup(db, a, s.SessionGroupID); err != nil {
		return nil, err
	}
	return &s, nil
}
