package route

import (
	statsCtrl "presensiku_backend/internals/features/attendance/stats/controller"
	"presensiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StatsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsCtrl.NewStatsController(db)

	// Agregasi lintas tabel: limiter khusus, lebih ketat dari global.
	g := r.Group("/analytics", middlewares.AnalyticsRateLimiter())
	g.Get("/org/:org_id", ctl.GetOrgAnalytics)
	g.Get("/group/:group_id", ctl.GetGroupStats)
	g.Get("/student/:student_id/group/:group_id", ctl.GetStudentStats)
}
