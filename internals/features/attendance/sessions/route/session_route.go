package route

import (
	sessionCtrl "presensiku_backend/internals/features/attendance/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SessionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sessionCtrl.NewSessionController(db)

	// Satu endpoint submit: upsert sesi + seluruh record-nya.
	r.Post("/attendance", ctl.TakeAttendance)
	r.Get("/sessions/:session_id", ctl.GetByID)
	r.Delete("/sessions/:session_id", ctl.Delete)
	r.Get("/groups/:group_id/sessions", ctl.ListByGroup)
}
