package route

import (
	gsCtrl "presensiku_backend/internals/features/school/group_students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GroupStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gsCtrl.NewGroupStudentController(db)

	r.Post("/group-students", ctl.Link)
	r.Delete("/group-students/:link_id", ctl.Unlink)
	r.Get("/groups/:group_id/students", ctl.ListByGroup)
}
