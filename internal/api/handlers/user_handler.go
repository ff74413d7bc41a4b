package handlers

import (
	"errors"
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/jwt"
	"recipebox/pkg/user"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	UserHandler interface {
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		RegistrationPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Home(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		jwtService  jwt.JWTService
		validator   *validator.Validate
		logger      *zap.Logger
	}
)

func NewUserHandler(
	userService user.UserService,
	jwtService jwt.JWTService,
	validator *validator.Validate,
	logger *zap.Logger,
) UserHandler {
	return &userHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *userHandler) LoginPage(c *fiber.Ctx) error {
	return presenters.Render(c, fiber.StatusOK, "pages/login", fiber.Map{"Title": "Log in"})
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return h.loginFailed(c, fiber.StatusBadRequest, domain.MessageFailedLogin)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.loginFailed(c, fiber.StatusBadRequest, domain.MessageFailedLogin)
	}

	res, err := h.userService.Login(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.loginFailed(c, fiber.StatusUnauthorized, domain.MessageFailedLogin)
		}
		h.logger.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		return h.loginFailed(c, fiber.StatusInternalServerError, domain.MessageErrorLogin)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.jwtService.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login/home", fiber.StatusSeeOther)
}

func (h *userHandler) loginFailed(c *fiber.Ctx, status int, message string) error {
	return presenters.Render(c, status, "pages/login", fiber.Map{
		"Title": "Log in",
		"Flash": message,
	})
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	presenters.ClearCookie(c, domain.SessionCookie)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *userHandler) RegistrationPage(c *fiber.Ctx) error {
	return presenters.Render(c, fiber.StatusOK, "pages/register", fiber.Map{"Title": "Register"})
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return h.registrationFailed(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.registrationFailed(c, fiber.StatusBadRequest, domain.MessageFailedRegister)
	}

	if err := h.userService.Register(c.UserContext(), *req); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return h.registrationFailed(c, fiber.StatusConflict, domain.MessageUsernameTaken)
		}
		h.logger.Error("registration failed", zap.String("username", req.Username), zap.Error(err))
		return h.registrationFailed(c, fiber.StatusInternalServerError, domain.MessageFailedRegister)
	}

	return presenters.RedirectWithFlash(c, "/login_page", domain.MessageSuccessRegister)
}

func (h *userHandler) registrationFailed(c *fiber.Ctx, status int, message string) error {
	return presenters.Render(c, status, "pages/register", fiber.Map{
		"Title": "Register",
		"Flash": message,
	})
}

func (h *userHandler) Home(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)

	dashboard, err := h.userService.GetDashboard(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// the account behind a still-valid token is gone
			presenters.ClearCookie(c, domain.SessionCookie)
			return presenters.RedirectWithFlash(c, "/login_page", domain.MessageLoginRequired)
		}
		h.logger.Error("failed to load dashboard", zap.String("user_id", userID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return presenters.Render(c, fiber.StatusOK, "pages/home", fiber.Map{
		"Title":     "Home",
		"Dashboard": dashboard,
	})
}
