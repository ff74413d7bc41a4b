package presenters

import (
	"errors"
	"recipebox/domain"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Render executes a page template inside the main layout. The session locals
// and any pending flash message are added to data, and the flash cookie is
// consumed.
func Render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}

	loggedIn, _ := c.Locals(domain.LocalLoggedIn).(bool)
	data["LoggedIn"] = loggedIn
	data["Username"] = c.Locals(domain.LocalUsername)

	if _, ok := data["Flash"]; !ok {
		data["Flash"] = c.Cookies(domain.FlashCookie)
	}
	if c.Cookies(domain.FlashCookie) != "" {
		ClearCookie(c, domain.FlashCookie)
	}

	return c.Status(status).Render(view, data)
}

// RedirectWithFlash stores message for the next rendered page and redirects.
func RedirectWithFlash(c *fiber.Ctx, location string, message string) error {
	if message != "" {
		c.Cookie(&fiber.Cookie{
			Name:     domain.FlashCookie,
			Value:    message,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Redirect(location, fiber.StatusSeeOther)
}

func ClearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ErrorHandler renders the error page for anything a handler returned
// instead of rendering. Raw error text never reaches the page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if code == fiber.StatusNotFound {
			message = domain.MessagePageNotFound
		}
	}

	if rerr := Render(c, code, "pages/error", fiber.Map{
		"Title":   "Error",
		"Code":    code,
		"Message": message,
	}); rerr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
