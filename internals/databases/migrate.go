package database

import (
	"log"

	sessionModel "presensiku_backend/internals/features/attendance/sessions/model"
	academicYearModel "presensiku_backend/internals/features/organizations/academic_years/model"
	memberModel "presensiku_backend/internals/features/organizations/members/model"
	orgModel "presensiku_backend/internals/features/organizations/organization/model"
	rosterModel "presensiku_backend/internals/features/school/group_students/model"
	groupModel "presensiku_backend/internals/features/school/groups/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
)

// EnsureSchema menjalankan migrasi idempoten: tabel (AutoMigrate untuk
// environment kosong; di Supabase yang sudah terisi jadi no-op), unique
// constraint untuk upsert, kolom org_id denormalisasi, lalu backfill satu
// kali untuk baris lama. Aman dipanggil berulang kali saat boot.
func EnsureSchema() {
	if err := DB.AutoMigrate(
		&orgModel.OrganizationModel{},
		&memberModel.OrganizationMemberModel{},
		&academicYearModel.AcademicYearModel{},
		&groupModel.GroupModel{},
		&studentModel.StudentModel{},
		&rosterModel.GroupStudentModel{},
		&sessionModel.SessionModel{},
		&sessionModel.AttendanceRecordModel{},
	); err != nil {
		log.Printf("⚠️ AutoMigrate gagal: %v", err)
	}

	stmts := []string{
		// Unique keys yang dipakai upsert (sessions per grup/tanggal/jam ke-n,
		// satu record per siswa per sesi, satu siswa sekali per grup).
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_sessions_group_date_class
			ON sessions (session_group_id, session_date, session_class_index)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_records_session_student
			ON attendance_records (attendance_record_session_id, attendance_record_student_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_group_students_group_student
			ON group_students (group_student_group_id, group_student_student_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_organization_members_user_org
			ON organization_members (organization_member_user_id, organization_member_org_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_organizations_slug
			ON organizations (organization_slug)`,

		// Kolom org_id denormalisasi di roster (untuk filter tenant yang murah).
		`ALTER TABLE group_students
			ADD COLUMN IF NOT EXISTS group_student_org_id UUID REFERENCES organizations(organization_id)`,

		// Backfill satu kali: sinkronkan org_id roster dari grupnya.
		`UPDATE group_students gs
			SET group_student_org_id = g.group_org_id
			FROM groups g
			WHERE gs.group_student_group_id = g.group_id
			  AND gs.group_student_org_id IS NULL`,
	}

	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Printf("⚠️ migrasi skema gagal: %v", err)
		}
	}
	log.Println("✅ Skema & constraint siap.")
}
