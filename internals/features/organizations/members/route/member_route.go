package route

import (
	memberCtrl "presensiku_backend/internals/features/organizations/members/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MemberRoutes(r fiber.Router, db *gorm.DB) {
	ctl := memberCtrl.NewMemberController(db)

	// Self-register: org tujuan dibawa di body, selalu untuk caller sendiri.
	r.Post("/memberships", ctl.Join)
	r.Get("/organizations/:org_id/members", ctl.ListByOrg)
}
