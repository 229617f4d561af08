package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"presensiku_backend/internals/features/attendance/sessions/dto"
	model "presensiku_backend/internals/features/attendance/sessions/model"
	"presensiku_backend/internals/features/organizations/authz"
	helper "presensiku_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// Target conflict upsert — harus persis sama dengan unique index
// uq_sessions_group_date_class di EnsureSchema.
func sessionConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "session_group_id"}, {Name: "session_date"}, {Name: "session_class_index"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"session_updated_at": gorm.Expr("now()"),
		}),
	}
}

// Target conflict per-record — pasangan uq_attendance_records_session_student.
// Submit ulang menimpa status/keterangan/komentar saja; kunci dan org tidak
// pernah ditulis ulang.
func recordConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_session_id"}, {Name: "attendance_record_student_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"attendance_record_status":        gorm.Expr("excluded.attendance_record_status"),
			"attendance_record_justification": gorm.Expr("excluded.attendance_record_justification"),
			"attendance_record_comment":       gorm.Expr("excluded.attendance_record_comment"),
			"attendance_record_updated_at":    gorm.Expr("now()"),
		}),
	}
}

// POST /api/a/attendance
// Upsert idempoten dua tingkat: sesi by (group, date, class_index),
// record by (session, student). Submit konkuren untuk key yang sama
// konvergen ke satu baris — last committed write wins.
func (ctl *SessionController) TakeAttendance(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.TakeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := req.ParsedDate()
	if err != nil {
		return helper.FromError(c, err)
	}
	if id := req.DuplicateStudentID(); id != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id duplikat di records: "+id.String())
	}

	// Guard SEBELUM tulis apa pun (cek & tulis satu transaksi).
	g, err := authz.EnsureCanManageGroup(ctl.DB, a, req.GroupID)
	if err != nil {
		return helper.FromError(c, err)
	}

	var session model.SessionModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		session = model.SessionModel{
			SessionGroupID:    g.GroupID,
			SessionOrgID:      g.GroupOrgID, // derivasi dari grup, bukan body
			SessionDate:       datatypes.Date(date),
			SessionClassIndex: req.ClassIndex,
		}
		if err := tx.Clauses(sessionConflictClause()).Create(&session).Error; err != nil {
			return err
		}

		// Ambil ulang by unique key — id pasti terisi baik insert maupun update.
		if err := tx.
			Where("session_group_id = ? AND session_date = ? AND session_class_index = ?",
				g.GroupID, datatypes.Date(date), req.ClassIndex).
			First(&session).Error; err != nil {
			return err
		}

		rows := make([]model.AttendanceRecordModel, 0, len(req.Records))
		for _, e := range req.Records {
			var just *model.Justification
			if e.Justification != nil {
				j := model.Justification(*e.Justification)
				just = &j
			}
			rows = append(rows, model.AttendanceRecordModel{
				AttendanceRecordSessionID:     session.SessionID,
				AttendanceRecordStudentID:     e.StudentID,
				AttendanceRecordOrgID:         g.GroupOrgID,
				AttendanceRecordStatus:        model.AttendanceStatus(e.Status),
				AttendanceRecordJustification: just,
				AttendanceRecordComment:       e.Comment,
			})
		}
		return tx.Clauses(recordConflictClause()).Create(&rows).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}

	var records []model.AttendanceRecordModel
	if err := ctl.DB.
		Where("attendance_record_session_id = ?", session.SessionID).
		Find(&records).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Absensi tersimpan", dto.ToSessionResponse(&session, records))
}

// GET /api/a/sessions/:session_id — sesi + record-nya (baca: member org).
func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	var session model.SessionModel
	err = ctl.DB.Scopes(authz.ScopeSessions(a)).
		Where("session_id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.FromError(c, err)
	}

	var records []model.AttendanceRecordModel
	if err := ctl.DB.Scopes(authz.ScopeAttendanceRecords(a)).
		Where("attendance_record_session_id = ?", session.SessionID).
		Find(&records).Error; err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Detail sesi", dto.ToSessionResponse(&session, records))
}

// GET /api/a/groups/:group_id/sessions?start_date=&end_date=
func (ctl *SessionController) ListByGroup(c *fiber.Ctx) error {
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

	q := ctl.DB.Scopes(authz.ScopeSessions(a)).
		Where("session_group_id = ?", groupID)
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "start_date tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("session_date >= ?", datatypes.Date(start))
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "end_date tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("session_date <= ?", datatypes.Date(end))
	}

	var rows []model.SessionModel
	if err := q.Order("session_date DESC, session_class_index ASC").Find(&rows).Error; err != nil {
		return helper.FromError(c, err)
	}

	out := make([]dto.SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSessionResponse(&rows[i], nil))
	}
	return helper.Success(c, "Daftar sesi", out)
}

// DELETE /api/a/sessions/:session_id — owner/admin atau guru pemilik grup;
// record di bawahnya ikut terhapus.
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	a, err := authz.LoadActor(c, ctl.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	s, err := authz.EnsureCanManageSession(ctl.DB, a, sessionID)
	if err != nil {
		return helper.FromError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM attendance_records WHERE attendance_record_session_id = ?`, s.SessionID).Error; err != nil {
			return err
		}
		return tx.Delete(s).Error
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Sesi dihapus", fiber.Map{"session_id": s.SessionID})
}
