package details

import (
	GroupStudentRoutes "presensiku_backend/internals/features/school/group_students/route"
	GroupRoutes "presensiku_backend/internals/features/school/groups/route"
	StudentRoutes "presensiku_backend/internals/features/school/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== SCHOOL (GROUPS & STUDENTS) ===================== */
func SchoolPrivateRoutes(r fiber.Router, db *gorm.DB) {
	GroupRoutes.GroupRoutes(r, db)
	StudentRoutes.StudentRoutes(r, db)
	GroupStudentRoutes.GroupStudentRoutes(r, db)
}
