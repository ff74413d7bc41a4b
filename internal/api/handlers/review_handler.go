package handlers

import (
	"errors"
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	ReviewHandler interface {
		ReviewPage(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
		logger        *zap.Logger
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate, logger *zap.Logger) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
		logger:        logger,
	}
}

func (h *reviewHandler) ReviewPage(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")

	res, err := h.reviewService.GetRecipeReviews(c.UserContext(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to get reviews", zap.String("recipe_id", recipeID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return presenters.Render(c, fiber.StatusOK, "pages/reviews", fiber.Map{
		"Title":   "Reviews for " + res.RecipeName,
		"Reviews": res,
	})
}

func (h *reviewHandler) AddReview(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)
	recipeID := c.Params("recipe_id")
	back := "/review_page/" + recipeID

	req := new(domain.AddReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.RedirectWithFlash(c, back, domain.MessageFailedAddReview)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.RedirectWithFlash(c, back, domain.MessageFailedAddReview)
	}

	err := h.reviewService.AddReview(c.UserContext(), *req, recipeID, userID)
	switch {
	case err == nil:
		return presenters.RedirectWithFlash(c, back, domain.MessageSuccessAddReview)
	case errors.Is(err, domain.ErrAlreadyReviewed):
		return presenters.RedirectWithFlash(c, back, domain.MessageAlreadyReviewed)
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.ErrNotFound
	default:
		h.logger.Error("failed to add review",
			zap.String("user_id", userID), zap.String("recipe_id", recipeID), zap.Error(err))
		return presenters.RedirectWithFlash(c, back, domain.MessageFailedProcessRequest)
	}
}
