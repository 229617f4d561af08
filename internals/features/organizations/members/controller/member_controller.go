package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/organizations/authz"
	"presensiku_backend/internals/features/organizations/members/dto"
	model "presensiku_backend/internals/features/organizations/members/model"
	helper "presensiku_backend/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// POST /api/a/organizations/members
// Self-register: membership selalu untuk caller sendiri (policy
// INSERT membership), role default teacher. Duplikat → 409.
func (ctl *MemberController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.JoinOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Pre-check lewat resolver supaya duplikat dapat 409 yang ramah;
	// unique index uq_organization_members_user_org tetap jadi backstop
	// untuk race antar request.
	if _, exists, err := authz.NewResolver(ctl.DB).RoleInOrganization(userID, req.OrganizationID); err != nil {
		return helper.FromError(c, err)
	} else if exists {
		return helper.Error(c, fiber.StatusConflict, "Sudah terdaftar di organisasi ini")
	}

	row := model.OrganizationMemberModel{
		OrganizationMemberUserID: userID, // bukan dari body
		OrganizationMemberOrgID:  req.OrganizationID,
		OrganizationMemberRole:   model.RoleTeacher,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Sudah terdaftar di organisasi ini")
		}
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bergabung ke organisasi", dto.ToMemberResponse(&row))
}

// GET /api/a/organizations/:org_id/members
// Hanya co-member: org di luar membership caller → daftar "tidak ada".
func (ctl *MemberController) ListByOrg(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	orgID, err := uuid.Parse(c.Params("org_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "org_id tidak valid")
	}

	var rows []model.OrganizationMemberModel
	if err := ctl.DB.Scopes(authz.ScopeMembers(a)).
		Where("organization_member_org_id = ?", orgID).
		Order("organization_member_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToMemberResponse(&rows[i]))
	}
	return helper.Success(c, "Daftar member", out)
}
