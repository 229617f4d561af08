package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: students
   Milik organisasi, bukan milik guru tertentu — semua member
   org boleh baca/tulis. Document ID unik per org (dicek di
   application layer sebelum insert, bukan constraint DB).
========================================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentOrgID uuid.UUID `gorm:"type:uuid;not null;column:student_org_id" json:"student_org_id"`

	StudentFirstName  string  `gorm:"type:varchar(120);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName   string  `gorm:"type:varchar(120);not null;column:student_last_name" json:"student_last_name"`
	StudentDocumentID *string `gorm:"type:varchar(60);column:student_document_id" json:"student_document_id,omitempty"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
