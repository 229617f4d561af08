package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/organizations/authz"
	model "presensiku_backend/internals/features/school/group_students/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
)

type GroupStudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupStudentController(db *gorm.DB) *GroupStudentController {
	return &GroupStudentController{DB: db, Validate: validator.New()}
}

type linkRequest struct {
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

// POST /api/a/group-students
// org_id TIDAK diterima dari body — selalu diturunkan dari grup
// (materialized join key, sumber kebenarannya grup).
func (ctl *GroupStudentController) Link(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	g, err := authz.EnsureCanManageGroup(ctl.DB, a, req.GroupID)
	if err != nil {
		return helper.FromError(c, err)
	}

	// Siswa harus ada di org yang sama.
	var st studentModel.StudentModel
	err = ctl.DB.Scopes(authz.ScopeStudents(a)).
		Where("student_id = ? AND student_org_id = ?", req.StudentID, g.GroupOrgID).
		First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	orgID := g.GroupOrgID
	row := model.GroupStudentModel{
		GroupStudentGroupID:   g.GroupID,
		GroupStudentStudentID: st.StudentID,
		GroupStudentOrgID:     &orgID, // derivasi server-side
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Siswa sudah terdaftar di grup ini")
		}
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa ditambahkan ke grup", row)
}

// DELETE /api/a/group-students/:link_id
func (ctl *GroupStudentController) Unlink(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	linkID, err := uuid.Parse(c.Params("link_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "link_id tidak valid")
	}

	var row model.GroupStudentModel
	err = ctl.DB.Scopes(authz.ScopeRosterLinks(a)).
		Where("group_student_id = ?", linkID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Roster tidak ditemukan")
		}
		return helper.FromError(c, err)
	}
	if _, err := authz.EnsureCanManageGroup(ctl.DB, a, row.GroupStudentGroupID); err != nil {
		return helper.FromError(c, err)
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Siswa dikeluarkan dari grup", fiber.Map{"group_student_id": row.GroupStudentID})
}

// GET /api/a/groups/:group_id/students — roster grup (baca cukup member).
func (ctl *GroupStudentController) ListByGroup(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("group_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "group_id tidak valid")
	}
	if _, err := authz.FindVisibleGroup(ctl.DB, a, groupID); err != nil {
		return helper.FromError(c, err)
	}

	var rows []studentModel.StudentModel
	err = ctl.DB.Model(&studentModel.StudentModel{}).
		Joins("JOIN group_students gs ON gs.group_student_student_id = students.student_id").
		Where("gs.group_student_group_id = ?", groupID).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&rows).Error
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Roster grup", rows)
}
