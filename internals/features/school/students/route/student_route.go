package route

import (
	studentCtrl "presensiku_backend/internals/features/school/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctl.Create)
	g.Post("/bulk", ctl.BulkCreate)
	g.Get("/", ctl.List) // filter: org_id, paginated
	g.Patch("/:student_id", ctl.Update)
	g.Delete("/:student_id", ctl.Delete)
}
