package route

import (
	groupCtrl "presensiku_backend/internals/features/school/groups/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GroupRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupCtrl.NewGroupController(db)

	g := r.Group("/groups")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List) // filter: org_id, type, academic_year_id
	g.Get("/:group_id", ctl.GetByID)
	g.Patch("/:group_id", ctl.Update)
	g.Delete("/:group_id", ctl.Delete)
}
