package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	yearModel "presensiku_backend/internals/features/organizations/academic_years/model"
	"presensiku_backend/internals/features/organizations/authz"
	memberModel "presensiku_backend/internals/features/organizations/members/model"
	"presensiku_backend/internals/features/organizations/organization/dto"
	model "presensiku_backend/internals/features/organizations/organization/model"
	helper "presensiku_backend/internals/helpers"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db, Validate: validator.New()}
}

// POST /api/a/organizations
// Bootstrap tenant self-service: SEMUA user terotentikasi boleh.
// Pembuat langsung jadi owner; tahun ajaran aktif ikut dibuat.
func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var org model.OrganizationModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, helper.GenerateSlug(req.OrganizationName), "organizations", "organization_slug")
		if err != nil {
			return err
		}

		org = model.OrganizationModel{
			OrganizationName: req.OrganizationName,
			OrganizationSlug: slug,
		}
		if err := tx.Create(&org).Error; err != nil {
			return err
		}

		// Membership owner untuk pembuat — satu-satunya jalur insert
		// membership yang bukan self-register eksplisit.
		member := memberModel.OrganizationMemberModel{
			OrganizationMemberUserID: userID,
			OrganizationMemberOrgID:  org.OrganizationID,
			OrganizationMemberRole:   memberModel.RoleOwner,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		year := yearModel.AcademicYearModel{
			AcademicYearOrgID:    org.OrganizationID,
			AcademicYearYear:     req.AcademicYear,
			AcademicYearIsActive: true,
		}
		return tx.Create(&year).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Organisasi dibuat", dto.ToOrganizationResponse(&org))
}

// GET /api/a/organizations — hanya org tempat caller terdaftar.
// Id diambil lewat resolver (tanpa scope): list org adalah satu-satunya
// query yang belum punya Actor untuk di-scope — inilah sumber datanya.
func (ctl *OrganizationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	ids, err := authz.NewResolver(ctl.DB).OrganizationsForUser(userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	if len(ids) == 0 {
		return helper.Success(c, "Daftar organisasi", []dto.OrganizationResponse{})
	}

	var rows []model.OrganizationModel
	if err := ctl.DB.
		Where("organization_id = ANY(?)", pq.Array(ids)).
		Order("organization_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.OrganizationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToOrganizationResponse(&rows[i]))
	}
	return helper.Success(c, "Daftar organisasi", out)
}

// GET /api/a/organizations/:org_id — menerima UUID atau slug.
func (ctl *OrganizationController) GetByID(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	q := ctl.DB.Scopes(authz.ScopeOrganizations(a))
	raw := c.Params("org_id")
	if orgID, parseErr := uuid.Parse(raw); parseErr == nil {
		q = q.Where("organization_id = ?", orgID)
	} else {
		q = q.Where("organization_slug = ?", raw)
	}

	var org model.OrganizationModel
	err = q.First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Organisasi tidak ditemukan")
		}
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Detail organisasi", dto.ToOrganizationResponse(&org))
}
