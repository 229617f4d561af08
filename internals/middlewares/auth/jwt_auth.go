package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi bearer token HMAC dan menaruh user_id di Locals.
// Membership & role TIDAK diambil dari token — selalu di-resolve dari DB
// oleh authz.LoadActor supaya tidak basi setelah perubahan organisasi.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// === HYDRATE user_id ===
		switch v := claims["user_id"].(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ada di token")
			}
			c.Locals("user_id", strings.TrimSpace(v))
		default:
			// fallback: subject standar
			if sub, ok := claims["sub"].(string); ok && strings.TrimSpace(sub) != "" {
				c.Locals("user_id", strings.TrimSpace(sub))
			} else {
				return fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ada di token")
			}
		}

		return c.Next()
	}
}
