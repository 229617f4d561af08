package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type AttendanceStatus string

const (
	AttendanceStatusPresent   AttendanceStatus = "present"
	AttendanceStatusAbsent    AttendanceStatus = "absent"
	AttendanceStatusLate      AttendanceStatus = "late"
	AttendanceStatusJustified AttendanceStatus = "justified"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusJustified:
		return true
	}
	return false
}

type Justification string

const (
	JustificationJustified   Justification = "justified"
	JustificationUnjustified Justification = "unjustified"
)

func (j Justification) Valid() bool {
	return j == JustificationJustified || j == JustificationUnjustified
}

/* =========================================
   Model: attendance_records
   Hasil satu siswa untuk satu sesi. Unik (session, student).
   Scope otorisasi diwarisi transitif Session → Group → Org.
========================================= */

type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_student_id" json:"attendance_record_student_id"`

	// Denormalisasi dari sessions.session_org_id.
	AttendanceRecordOrgID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_org_id" json:"attendance_record_org_id"`

	AttendanceRecordStatus        AttendanceStatus `gorm:"type:varchar(16);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordJustification *Justification   `gorm:"type:varchar(16);column:attendance_record_justification" json:"attendance_record_justification,omitempty"`
	AttendanceRecordComment       *string          `gorm:"type:text;column:attendance_record_comment" json:"attendance_record_comment,omitempty"`

	// Audit
	AttendanceRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
