package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/organizations/authz"
	"presensiku_backend/internals/features/school/students/dto"
	model "presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// Cek duplikat document ID per org (application-layer, bukan constraint DB).
func (ctl *StudentController) documentIDTaken(tx *gorm.DB, orgID uuid.UUID, docID string, excludeID *uuid.UUID) (bool, error) {
	q := tx.Model(&model.StudentModel{}).
		Where("student_org_id = ? AND student_document_id = ?", orgID, docID)
	if excludeID != nil {
		q = q.Where("student_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// POST /api/a/students — siswa resource bersama: semua member org boleh.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authz.EnsureMember(a, req.StudentOrgID); err != nil {
		return helper.FromError(c, err)
	}

	if req.StudentDocumentID != nil {
		taken, err := ctl.documentIDTaken(ctl.DB, req.StudentOrgID, *req.StudentDocumentID, nil)
		if err != nil {
			return helper.FromError(c, err)
		}
		if taken {
			return helper.Error(c, fiber.StatusConflict, "Document ID sudah terpakai di organisasi ini")
		}
	}

	row := req.ToModel()
	if err := ctl.DB.Create(row).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa dibuat", dto.ToStudentResponse(row))
}

// POST /api/a/students/bulk — body hasil import CSV dari client.
// Baris dgn document ID duplikat (di DB maupun di dalam batch) dilewati
// dan dilaporkan, sisanya tetap dibuat dalam satu transaksi.
func (ctl *StudentController) BulkCreate(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.BulkCreateStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := authz.EnsureMember(a, req.StudentOrgID); err != nil {
		return helper.FromError(c, err)
	}

	created := make([]dto.StudentResponse, 0, len(req.Students))
	skipped := make([]string, 0)
	dup := req.BatchDuplicates()

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i := range req.Students {
			r := req.Students[i]

			if r.StudentDocumentID != nil {
				if dup[i] {
					skipped = append(skipped, *r.StudentDocumentID)
					continue
				}
				taken, err := ctl.documentIDTaken(tx, req.StudentOrgID, *r.StudentDocumentID, nil)
				if err != nil {
					return err
				}
				if taken {
					skipped = append(skipped, *r.StudentDocumentID)
					continue
				}
			}

			row := r.ToModel(req.StudentOrgID)
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			created = append(created, dto.ToStudentResponse(row))
		}
		return nil
	})
	if err != nil {
		return helper.FromError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Import siswa selesai", fiber.Map{
		"created": created,
		"skipped": skipped,
	})
}

// GET /api/a/students?org_id=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	q := ctl.DB.Model(&model.StudentModel{}).Scopes(authz.ScopeStudents(a))
	if raw := c.Query("org_id"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "org_id tidak valid")
		}
		q = q.Where("student_org_id = ?", orgID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []model.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToStudentResponse(&rows[i]))
	}
	return helper.Success(c, "Daftar siswa", fiber.Map{
		"students":   out,
		"pagination": helper.BuildPagination(p, total, len(out)),
	})
}

// PATCH /api/a/students/:student_id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var row model.StudentModel
	err = ctl.DB.Scopes(authz.ScopeStudents(a)).
		Where("student_id = ?", studentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentFirstName != nil {
		row.StudentFirstName = strings.TrimSpace(*req.StudentFirstName)
	}
	if req.StudentLastName != nil {
		row.StudentLastName = strings.TrimSpace(*req.StudentLastName)
	}
	if req.StudentDocumentID != nil {
		doc := strings.TrimSpace(*req.StudentDocumentID)
		if doc == "" {
			row.StudentDocumentID = nil
		} else {
			taken, err := ctl.documentIDTaken(ctl.DB, row.StudentOrgID, doc, &row.StudentID)
			if err != nil {
				return helper.FromError(c, err)
			}
			if taken {
				return helper.Error(c, fiber.StatusConflict, "Document ID sudah terpakai di organisasi ini")
			}
			row.StudentDocumentID = &doc
		}
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Siswa diperbarui", dto.ToStudentResponse(&row))
}

// DELETE /api/a/students/:student_id
// Destruktif: ikut menghapus record absensi & roster siswa tsb.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var row model.StudentModel
	err = ctl.DB.Scopes(authz.ScopeStudents(a)).
		Where("student_id = ?", studentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM attendance_records WHERE attendance_record_student_id = ?`, row.StudentID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM group_students WHERE group_student_student_id = ?`, row.StudentID).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Siswa dihapus", fiber.Map{"student_id": row.StudentID})
}
