package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type GroupType string

const (
	GroupTypeCourse   GroupType = "course"
	GroupTypeWorkshop GroupType = "workshop"
)

func (t GroupType) Valid() bool {
	return t == GroupTypeCourse || t == GroupTypeWorkshop
}

/* =========================================
   Model: groups (kursus/workshop)
   Invariant: group_org_id harus sama dengan org milik
   academic year-nya (divalidasi di controller saat create/update).
========================================= */

type GroupModel struct {
	GroupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:group_id" json:"group_id"`

	// Tenant & relasi utama
	GroupOrgID          uuid.UUID `gorm:"type:uuid;not null;column:group_org_id" json:"group_org_id"`
	GroupAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:group_academic_year_id" json:"group_academic_year_id"`
	GroupTeacherID      uuid.UUID `gorm:"type:uuid;not null;column:group_teacher_id" json:"group_teacher_id"`

	GroupName string    `gorm:"type:varchar(160);not null;column:group_name" json:"group_name"`
	GroupType GroupType `gorm:"type:varchar(16);not null;default:'course';column:group_type" json:"group_type"`

	// Audit
	GroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:group_created_at" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:group_updated_at" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
