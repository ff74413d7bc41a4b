package handlers

import (
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/announcement"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	AnnouncementHandler interface {
		AnnouncementPage(c *fiber.Ctx) error
		PostAnnouncement(c *fiber.Ctx) error
	}

	announcementHandler struct {
		announcementService announcement.AnnouncementService
		validator           *validator.Validate
		logger              *zap.Logger
	}
)

func NewAnnouncementHandler(
	announcementService announcement.AnnouncementService,
	validator *validator.Validate,
	logger *zap.Logger,
) AnnouncementHandler {
	return &announcementHandler{
		announcementService: announcementService,
		validator:           validator,
		logger:              logger,
	}
}

func (h *announcementHandler) AnnouncementPage(c *fiber.Ctx) error {
	announcements, err := h.announcementService.GetLatestAnnouncements(c.UserContext())
	if err != nil {
		h.logger.Error("failed to get announcements", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/announcements", fiber.Map{
		"Title":         "Announcements",
		"Announcements": announcements,
	})
}

func (h *announcementHandler) PostAnnouncement(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)

	req := new(domain.AnnouncementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.RedirectWithFlash(c, "/announcement", domain.MessageFailedPostAnnouncement)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.RedirectWithFlash(c, "/announcement", domain.MessageFailedPostAnnouncement)
	}

	if err := h.announcementService.PostAnnouncement(c.UserContext(), *req, userID); err != nil {
		h.logger.Error("failed to post announcement", zap.String("user_id", userID), zap.Error(err))
		return presenters.RedirectWithFlash(c, "/announcement", domain.MessageFailedProcessRequest)
	}
	return presenters.RedirectWithFlash(c, "/announcement", domain.MessageSuccessPostAnnouncement)
}
