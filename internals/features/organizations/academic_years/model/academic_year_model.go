package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================
   Model: academic_years
   Satu tahun ajaran aktif per organisasi (asumsi konsumen,
   bukan constraint keras).
========================================= */

type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`

	AcademicYearOrgID    uuid.UUID `gorm:"type:uuid;not null;column:academic_year_org_id" json:"academic_year_org_id"`
	AcademicYearYear     int       `gorm:"not null;column:academic_year_year" json:"academic_year_year"`
	AcademicYearIsActive bool      `gorm:"not null;default:false;column:academic_year_is_active" json:"academic_year_is_active"`

	// Audit
	AcademicYearCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:academic_year_updated_at" json:"academic_year_updated_at"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
