package route

import (
	ayCtrl "presensiku_backend/internals/features/organizations/academic_years/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademicYearRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ayCtrl.NewAcademicYearController(db)

	r.Post("/academic-years", ctl.Create)
	r.Get("/organizations/:org_id/academic-years", ctl.ListByOrg)
	r.Patch("/academic-years/:year_id/activate", ctl.Activate)
}
