package authz

import (
	"testing"

	"github.com/google/uuid"

	memberModel "presensiku_backend/internals/features/organizations/members/model"
)

func TestCanMutateOwned(t *testing.T) {
	teacher := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		role    memberModel.MemberRole
		hasRole bool
		caller  uuid.UUID
		want    bool
	}{
		{"bukan member ditolak", memberModel.RoleAdmin, false, teacher, false},
		{"owner boleh", memberModel.RoleOwner, true, other, true},
		{"admin boleh", memberModel.RoleAdmin, true, other, true},
		{"guru pemilik grup boleh", memberModel.RoleTeacher, true, teacher, true},
		{"guru lain ditolak", memberModel.RoleTeacher, true, other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMutateOwned(tt.role, tt.hasRole, teacher, tt.caller)
			if got != tt.want {
				t.Errorf("CanMutateOwned(%s, %v, caller=%s) = %v, want %v",
					tt.role, tt.hasRole, tt.caller, got, tt.want)
			}
		})
	}
}

func TestCanInsertMembership(t *testing.T) {
	me := uuid.New()
	someoneElse := uuid.New()

	if !CanInsertMembership(me, me) {
		t.Error("insert membership untuk diri sendiri harus boleh")
	}
	if CanInsertMembership(someoneElse, me) {
		t.Error("insert membership untuk user lain harus ditolak")
	}
}

func TestActorMembership(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()
	orgC := uuid.New()
	userID := uuid.New()

	a := NewActor(userID, map[uuid.UUID]memberModel.MemberRole{
		orgA: memberModel.RoleAdmin,
		orgB: memberModel.RoleTeacher,
	})

	if !a.IsMember(orgA) || !a.IsMember(orgB) {
		t.Fatal("actor harus member di org yang ada di memberships")
	}
	if a.IsMember(orgC) {
		t.Error("org di luar membership harus invisible")
	}
	if !a.IsAdminIn(orgA) {
		t.Error("admin harus privileged di org-nya")
	}
	if a.IsAdminIn(orgB) {
		t.Error("teacher tidak boleh dianggap privileged")
	}
	if a.IsAdminIn(orgC) {
		t.Error("non-member tidak pernah privileged")
	}

	role, ok := a.RoleIn(orgB)
	if !ok || role != memberModel.RoleTeacher {
		t.Errorf("RoleIn(orgB) = (%s, %v), want (teacher, true)", role, ok)
	}
	if _, ok := a.RoleIn(orgC); ok {
		t.Error("RoleIn untuk non-member harus ok=false")
	}

	if got := len(a.OrgIDs()); got != 2 {
		t.Errorf("OrgIDs() len = %d, want 2", got)
	}
}

func TestActorNoMemberships(t *testing.T) {
	a := NewActor(uuid.New(), nil)
	if a.IsMember(uuid.New()) {
		t.Error("actor tanpa membership tidak boleh member di mana pun")
	}
	if len(a.OrgIDs()) != 0 {
		t.Error("OrgIDs harus kosong untuk actor tanpa membership")
	}
}

func TestMemberRoleValid(t *testing.T) {
	for _, r := range []memberModel.MemberRole{
		memberModel.RoleOwner, memberModel.RoleAdmin, memberModel.RoleTeacher,
	} {
		if !r.Valid() {
			t.Errorf("role %q harus valid", r)
		}
	}
	if memberModel.MemberRole("superuser").Valid() {
		t.Error("role di luar enum harus invalid")
	}
	if !memberModel.RoleOwner.IsPrivileged() || !memberModel.RoleAdmin.IsPrivileged() {
		t.Error("owner dan admin harus privileged")
	}
	if memberModel.RoleTeacher.IsPrivileged() {
		t.Error("teacher tidak boleh privileged")
	}
}
