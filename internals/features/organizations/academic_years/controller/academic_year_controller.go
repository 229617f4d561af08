package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/organizations/academic_years/dto"
	model "presensiku_backend/internals/features/organizations/academic_years/model"
	"presensiku_backend/internals/features/organizations/authz"
	helper "presensiku_backend/internals/helpers"
)

type AcademicYearController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db, Validate: validator.New()}
}

// POST /api/a/academic-years — member org mana pun boleh buat.
func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authz.EnsureMember(a, req.AcademicYearOrgID); err != nil {
		return helper.FromError(c, err)
	}

	row := req.ToModel()
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Satu tahun aktif per org (best-effort, bukan constraint keras).
		if row.AcademicYearIsActive {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_org_id = ?", row.AcademicYearOrgID).
				Update("academic_year_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tahun ajaran dibuat", dto.ToAcademicYearResponse(row))
}

// GET /api/a/organizations/:org_id/academic-years
func (ctl *AcademicYearController) ListByOrg(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	orgID, err := uuid.Parse(c.Params("org_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "org_id tidak valid")
	}

	var rows []model.AcademicYearModel
	if err := ctl.DB.Scopes(authz.ScopeAcademicYears(a)).
		Where("academic_year_org_id = ?", orgID).
		Order("academic_year_year DESC").
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.AcademicYearResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAcademicYearResponse(&rows[i]))
	}
	return helper.Success(c, "Daftar tahun ajaran", out)
}

// PATCH /api/a/academic-years/:year_id/activate
func (ctl *AcademicYearController) Activate(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	yearID, err := uuid.Parse(c.Params("year_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "year_id tidak valid")
	}

	var row model.AcademicYearModel
	err = ctl.DB.Scopes(authz.ScopeAcademicYears(a)).
		Where("academic_year_id = ?", yearID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_org_id = ?", row.AcademicYearOrgID).
			Update("academic_year_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.AcademicYearModel{}).
			Where("academic_year_id = ?", row.AcademicYearID).
			Update("academic_year_is_active", true).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	row.AcademicYearIsActive = true
	return helper.Success(c, "Tahun ajaran diaktifkan", dto.ToAcademicYearResponse(&row))
}
