package service

import (
	"gorm.io/gorm"
)

/* ---------------------------------------------------
   Perbaikan integritas roster.

   group_student_org_id adalah join key yang dimaterialisasi
   dari groups.group_org_id. Baris lama (sebelum kolom ini ada)
   atau baris hasil re-assign organisasi bisa null/menyimpang —
   backfill ini merekonsiliasinya. Idempoten, aman diulang.
--------------------------------------------------- */

const backfillOrgIDSQL = `UPDATE group_students gs
	SET group_student_org_id = g.group_org_id
	FROM groups g
	WHERE gs.group_student_group_id = g.group_id
	  AND gs.group_student_org_id IS NULL`

const repairDivergentSQL = `UPDATE group_students gs
	SET group_student_org_id = g.group_org_id
	FROM groups g
	WHERE gs.group_student_group_id = g.group_id
	  AND gs.group_student_org_id IS DISTINCT FROM g.group_org_id`

type RosterRepairService struct{}

func NewRosterRepairService() *RosterRepairService { return &RosterRepairService{} }

// BackfillOrgID mengisi org_id yang null dari grupnya.
// Return: jumlah baris yang diperbaiki.
func (s *RosterRepairService) BackfillOrgID(tx *gorm.DB) (int64, error) {
	res := tx.Exec(backfillOrgIDSQL)
	return res.RowsAffected, res.Error
}

// RepairDivergent menyamakan org_id yang MENYIMPANG dari grupnya
// (mis. setelah grup dipindah organisasi).
func (s *RosterRepairService) RepairDivergent(tx *gorm.DB) (int64, error) {
	res := tx.Exec(repairDivergentSQL)
	return res.RowsAffected, res.Error
}

// CountDivergent untuk monitoring (dipanggil scheduler).
func (s *RosterRepairService) CountDivergent(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Table("group_students AS gs").
		Joins("JOIN groups g ON gs.group_student_group_id = g.group_id").
		Where("gs.group_student_org_id IS DISTINCT FROM g.group_org_id").
		Count(&n).Error
	return n, err
}
