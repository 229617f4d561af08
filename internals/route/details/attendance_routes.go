package details

import (
	SessionRoutes "presensiku_backend/internals/features/attendance/sessions/route"
	StatsRoutes "presensiku_backend/internals/features/attendance/stats/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ATTENDANCE & ANALYTICS ===================== */
func AttendancePrivateRoutes(r fiber.Router, db *gorm.DB) {
	SessionRoutes.SessionRoutes(r, db)
	StatsRoutes.StatsRoutes(r, db)
}
