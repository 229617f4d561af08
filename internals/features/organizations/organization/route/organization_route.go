package route

import (
	orgCtrl "presensiku_backend/internals/features/organizations/organization/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := orgCtrl.NewOrganizationController(db)

	g := r.Group("/organizations")
	g.Post("/", ctl.Create) // onboarding: org + owner + tahun ajaran aktif
	g.Get("/", ctl.ListMine)
	g.Get("/:org_id", ctl.GetByID)
}
