package middleware

import (
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	Middleware interface {
		SessionMiddleware(jwtService jwt.JWTService) fiber.Handler
		AuthMiddleware() fiber.Handler
	}

	middleware struct {
		logger *zap.Logger
	}
)

func NewMiddleware(logger *zap.Logger) Middleware {
	return &middleware{logger: logger}
}

// SessionMiddleware resolves the session cookie into request locals. A
// missing, tampered or expired token leaves the request anonymous.
func (m *middleware) SessionMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(domain.LocalLoggedIn, false)

		token := c.Cookies(domain.SessionCookie)
		if token == "" {
			return c.Next()
		}

		userID, username, err := jwtService.GetSessionByToken(token)
		if err != nil {
			m.logger.Debug("dropping session cookie", zap.Error(err))
			presenters.ClearCookie(c, domain.SessionCookie)
			return c.Next()
		}

		c.Locals(domain.LocalUserID, userID)
		c.Locals(domain.LocalUsername, username)
		c.Locals(domain.LocalLoggedIn, true)
		return c.Next()
	}
}

func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if loggedIn, _ := c.Locals(domain.LocalLoggedIn).(bool); !loggedIn {
			return presenters.RedirectWithFlash(c, "/login_page", domain.MessageLoginRequired)
		}
		return c.Next()
	}
}
