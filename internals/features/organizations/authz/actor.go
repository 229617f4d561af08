package authz

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "presensiku_backend/internals/helpers"
	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

const locActor = "authz_actor"

/* =========================================================
   Actor — identitas caller + membership hasil resolve.
   Dibangun sekali per request dan dicache di Locals.
========================================================= */

type Actor struct {
	UserID      uuid.UUID
	memberships map[uuid.UUID]memberModel.MemberRole
}

// NewActor untuk test / pemakaian di luar fiber.
func NewActor(userID uuid.UUID, memberships map[uuid.UUID]memberModel.MemberRole) *Actor {
	if memberships == nil {
		memberships = map[uuid.UUID]memberModel.MemberRole{}
	}
	return &Actor{UserID: userID, memberships: memberships}
}

func (a *Actor) IsMember(orgID uuid.UUID) bool {
	_, ok := a.memberships[orgID]
	return ok
}

func (a *Actor) RoleIn(orgID uuid.UUID) (memberModel.MemberRole, bool) {
	r, ok := a.memberships[orgID]
	return r, ok
}

// IsAdminIn: owner atau admin pada org tsb.
func (a *Actor) IsAdminIn(orgID uuid.UUID) bool {
	r, ok := a.memberships[orgID]
	return ok && r.IsPrivileged()
}

// OrgIDs untuk predicate tenant (`org_id = ANY(...)`).
func (a *Actor) OrgIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(a.memberships))
	for id := range a.memberships {
		out = append(out, id)
	}
	return out
}

// LoadActor mengambil user_id dari token lalu resolve membership
// lewat Resolver (privileged). Hasilnya dicache di Locals supaya
// controller + guard dalam satu request tidak query ulang.
func LoadActor(c *fiber.Ctx, db *gorm.DB) (*Actor, error) {
	if v := c.Locals(locActor); v != nil {
		if a, ok := v.(*Actor); ok {
			return a, nil
		}
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	ms, err := NewResolver(db).Memberships(userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat membership")
	}

	a := NewActor(userID, ms)
	c.Locals(locActor, a)
	return a, nil
}
