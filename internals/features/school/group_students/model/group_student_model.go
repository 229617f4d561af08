package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: group_students (roster link)
   org_id diturunkan dari grup saat tulis (server-side),
   tidak pernah dipercaya dari client. Unik (group, student).
========================================= */

type GroupStudentModel struct {
	GroupStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_student_id" json:"group_student_id"`

	GroupStudentGroupID   uuid.UUID `gorm:"type:uuid;not null;column:group_student_group_id" json:"group_student_group_id"`
	GroupStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:group_student_student_id" json:"group_student_student_id"`

	// Denormalisasi dari groups.group_org_id (materialized join key).
	GroupStudentOrgID *uuid.UUID `gorm:"type:uuid;column:group_student_org_id" json:"group_student_org_id,omitempty"`

	// Audit
	GroupStudentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:group_student_created_at" json:"group_student_created_at"`
}

func (GroupStudentModel) TableName() string { return "group_students" }
