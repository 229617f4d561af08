package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================
   Model: sessions
   Satu kejadian absensi untuk sebuah grup pada tanggal +
   class_index (mendukung lebih dari satu sesi per hari).
   Unik (group, date, class_index) — dipakai upsert idempoten.
========================================= */

type SessionModel struct {
	SessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`

	SessionGroupID uuid.UUID `gorm:"type:uuid;not null;column:session_group_id" json:"session_group_id"`

	// Denormalisasi dari groups.group_org_id untuk cek tenant yang murah.
	SessionOrgID uuid.UUID `gorm:"type:uuid;not null;column:session_org_id" json:"session_org_id"`

	SessionDate       datatypes.Date `gorm:"type:date;not null;column:session_date" json:"session_date"`
	SessionClassIndex int            `gorm:"not null;default:1;column:session_class_index" json:"session_class_index"`

	// Audit
	SessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:session_created_at" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:session_updated_at" json:"session_updated_at"`
}

func (SessionModel) TableName() string { return "sessions" }
