// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"presensiku_backend/internals/configs"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
	routeDetails "presensiku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE (tanpa auth) =====================
	BaseRoutes(app, db)

	// ===================== PRIVATE (JWT) =====================
	// Semua fitur di bawah satu grup: visibilitas per-baris sudah
	// ditangani scope membership, bukan pemisahan grup route.
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up OrganizationRoutes...")
	routeDetails.OrganizationPrivateRoutes(private, db)

	log.Println("[INFO] Setting up SchoolRoutes...")
	routeDetails.SchoolPrivateRoutes(private, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendancePrivateRoutes(private, db)
}
