package details

import (
	AcademicYearRoutes "presensiku_backend/internals/features/organizations/academic_years/route"
	MemberRoutes "presensiku_backend/internals/features/organizations/members/route"
	OrganizationRoutes "presensiku_backend/internals/features/organizations/organization/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ORGANIZATIONS ===================== */
// Semua endpoint org butuh JWT; visibilitas per-baris diatur scope membership.
func OrganizationPrivateRoutes(r fiber.Router, db *gorm.DB) {
	OrganizationRoutes.OrganizationRoutes(r, db)
	MemberRoutes.MemberRoutes(r, db)
	AcademicYearRoutes.AcademicYearRoutes(r, db)
}
