package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearModel "presensiku_backend/internals/features/organizations/academic_years/model"
	"presensiku_backend/internals/features/organizations/authz"
	"presensiku_backend/internals/features/school/groups/dto"
	model "presensiku_backend/internals/features/school/groups/model"
	helper "presensiku_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

// POST /api/a/groups
// Guru biasa otomatis jadi pemilik; hanya admin/owner yang boleh
// menunjuk guru lain. Invariant: org grup == org tahun ajarannya.
func (ctl *GroupController) Create(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authz.EnsureMember(a, req.GroupOrgID); err != nil {
		return helper.FromError(c, err)
	}

	// Validasi invariant AY: harus ada & org-nya sama.
	var year yearModel.AcademicYearModel
	err = ctl.DB.Scopes(authz.ScopeAcademicYears(a)).
		Where("academic_year_id = ?", req.GroupAcademicYearID).
		First(&year).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return helper.FromError(c, err)
	}
	if year.AcademicYearOrgID != req.GroupOrgID {
		return helper.Error(c, fiber.StatusBadRequest, "Tahun ajaran bukan milik organisasi ini")
	}

	teacherID := a.UserID
	if req.GroupTeacherID != nil && a.IsAdminIn(req.GroupOrgID) {
		teacherID = *req.GroupTeacherID
	}

	row := model.GroupModel{
		GroupOrgID:          req.GroupOrgID,
		GroupAcademicYearID: req.GroupAcademicYearID,
		GroupTeacherID:      teacherID,
		GroupName:           req.GroupName,
		GroupType:           model.GroupType(req.GroupType),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grup dibuat", dto.ToGroupResponse(&row))
}

// GET /api/a/groups?org_id=&type=&academic_year_id=
func (ctl *GroupController) List(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	q := ctl.DB.Scopes(authz.ScopeGroups(a))
	if raw := c.Query("org_id"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "org_id tidak valid")
		}
		q = q.Where("group_org_id = ?", orgID)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("group_type = ?", t)
	}
	if raw := c.Query("academic_year_id"); raw != "" {
		yearID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "academic_year_id tidak valid")
		}
		q = q.Where("group_academic_year_id = ?", yearID)
	}

	var rows []model.GroupModel
	if err := q.Order("group_created_at ASC").Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}
	out := make([]dto.GroupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToGroupResponse(&rows[i]))
	}
	return helper.Success(c, "Daftar grup", out)
}

// GET /api/a/groups/:group_id — baca cukup member org.
func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}

	g, err := authz.FindVisibleGroup(ctl.DB, a, groupID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Detail grup", dto.ToGroupResponse(g))
}

// PATCH /api/a/groups/:group_id — owner/admin atau guru pemilik.
func (ctl *GroupController) Update(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}

	g, err := authz.EnsureCanManageGroup(ctl.DB, a, groupID)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	// Reassign guru hanya untuk admin/owner.
	if req.GroupTeacherID != nil && !a.IsAdminIn(g.GroupOrgID) {
		return helper.FromError(c, authz.ErrNotAuthorized)
	}

	req.Apply(g)
	if err := ctl.DB.Save(g).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Grup diperbarui", dto.ToGroupResponse(g))
}

// DELETE /api/a/groups/:group_id
// Destruktif: ikut menghapus sesi, record absensi, dan roster
// dalam satu transaksi (konfirmasi eksplisit urusan client).
func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}

	g, err := authz.EnsureCanManageGroup(ctl.DB, a, groupID)
	if err != nil {
		return helper.FromError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM attendance_records
			WHERE attendance_record_session_id IN
				(SELECT session_id FROM sessions WHERE session_group_id = ?)`, g.GroupID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM sessions WHERE session_group_id = ?`, g.GroupID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM group_students WHERE group_student_group_id = ?`, g.GroupID).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Grup dihapus", fiber.Map{"group_id": g.GroupID})
}
