package authz

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   Scope visibilitas per entitas (padanan policy SELECT RLS).

   Setiap query baca WAJIB lewat scope ini: baris di luar
   org caller tidak muncul — hasil kosong diam-diam, bukan
   error, supaya keberadaan data tidak bocor.

   Catatan: session & attendance_record bisa difilter langsung
   karena org_id didenormalisasi ke tabelnya (materialized
   join key), tanpa join ke groups.
========================================================= */

func orgScope(column string, a *Actor) func(*gorm.DB) *gorm.DB {
	ids := a.OrgIDs()
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			// tanpa membership: tidak ada baris yang terlihat
			return db.Where("1 = 0")
		}
		return db.Where(column+" = ANY(?)", pq.Array(ids))
	}
}

func ScopeOrganizations(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("organization_id", a)
}

func ScopeMembers(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("organization_member_org_id", a)
}

func ScopeAcademicYears(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("academic_year_org_id", a)
}

func ScopeGroups(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("group_org_id", a)
}

func ScopeStudents(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("student_org_id", a)
}

func ScopeRosterLinks(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("group_student_org_id", a)
}

func ScopeSessions(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("session_org_id", a)
}

func ScopeAttendanceRecords(a *Actor) func(*gorm.DB) *gorm.DB {
	return orgScope("attendance_record_org_id", a)
}
