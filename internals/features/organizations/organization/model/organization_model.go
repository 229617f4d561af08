package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: organizations (tenant boundary)
========================================= */

type OrganizationModel struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_id" json:"organization_id"`

	OrganizationName string `gorm:"type:varchar(160);not null;column:organization_name" json:"organization_name"`
	OrganizationSlug string `gorm:"type:varchar(160);not null;column:organization_slug" json:"organization_slug"`

	// Audit
	OrganizationCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:organization_created_at" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:organization_updated_at" json:"organization_updated_at"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index" json:"organization_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }
