package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "presensiku_backend/internals/features/attendance/sessions/model"
)

/* =========================================
   Request
========================================= */

type AttendanceEntry struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=present absent late justified"`
	Justification *string   `json:"justification,omitempty" validate:"omitempty,oneof=justified unjustified"`
	Comment       *string   `json:"comment,omitempty" validate:"omitempty,max=500"`
}

func (e *AttendanceEntry) Normalize() {
	e.Status = strings.ToLower(strings.TrimSpace(e.Status))
	if e.Justification != nil {
		v := strings.ToLower(strings.TrimSpace(*e.Justification))
		if v == "" {
			e.Justification = nil
		} else {
			e.Justification = &v
		}
	}
	if e.Comment != nil {
		v := strings.TrimSpace(*e.Comment)
		if v == "" {
			e.Comment = nil
		} else {
			e.Comment = &v
		}
	}
}

// Absen satu grup satu tanggal: upsert — submit ulang mengubah,
// tidak menduplikasi.
type TakeAttendanceRequest struct {
	GroupID    uuid.UUID         `json:"group_id" validate:"required"`
	Date       string            `json:"date" validate:"required"` // YYYY-MM-DD
	ClassIndex int               `json:"class_index" validate:"omitempty,min=1,max=20"`
	Records    []AttendanceEntry `json:"records" validate:"required,min=1,max=200,dive"`
}

func (r *TakeAttendanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	if r.ClassIndex == 0 {
		r.ClassIndex = 1
	}
	for i := range r.Records {
		r.Records[i].Normalize()
	}
}

// DuplicateStudentID: satu siswa hanya boleh muncul sekali per submit.
// Multi-row upsert dengan target conflict yang sama dua kali dalam satu
// INSERT ditolak Postgres, jadi ditolak dulu di sini sebagai 400.
func (r *TakeAttendanceRequest) DuplicateStudentID() *uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(r.Records))
	for i := range r.Records {
		id := r.Records[i].StudentID
		if seen[id] {
			return &id
		}
		seen[id] = true
	}
	return nil
}

func (r *TakeAttendanceRequest) ParsedDate() (time.Time, error) {
	d, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date tidak valid (YYYY-MM-DD)")
	}
	return d, nil
}

/* =========================================
   Response
========================================= */

type AttendanceRecordLite struct {
	AttendanceRecordID uuid.UUID               `json:"attendance_record_id"`
	StudentID          uuid.UUID               `json:"student_id"`
	Status             model.AttendanceStatus  `json:"status"`
	Justification      *model.Justification    `json:"justification,omitempty"`
	Comment            *string                 `json:"comment,omitempty"`
}

func ToAttendanceRecordLite(m *model.AttendanceRecordModel) AttendanceRecordLite {
	return AttendanceRecordLite{
		AttendanceRecordID: m.AttendanceRecordID,
		StudentID:          m.AttendanceRecordStudentID,
		Status:             m.AttendanceRecordStatus,
		Justification:      m.AttendanceRecordJustification,
		Comment:            m.AttendanceRecordComment,
	}
}

type SessionResponse struct {
	SessionID  uuid.UUID              `json:"session_id"`
	GroupID    uuid.UUID              `json:"group_id"`
	Date       string                 `json:"date"`
	ClassIndex int                    `json:"class_index"`
	Records    []AttendanceRecordLite `json:"records,omitempty"`
}

func ToSessionResponse(s *model.SessionModel, records []model.AttendanceRecordModel) SessionResponse {
	out := SessionResponse{
		SessionID:  s.SessionID,
		GroupID:    s.SessionGroupID,
		Date:       time.Time(s.SessionDate).Format("2006-01-02"),
		ClassIndex: s.SessionClassIndex,
	}
	for i := range records {
		out.Records = append(out.Records, ToAttendanceRecordLite(&records[i]))
	}
	return out
}
