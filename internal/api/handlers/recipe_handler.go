package handlers

import (
	"errors"
	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/recipe"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	RecipeHandler interface {
		Index(c *fiber.Ctx) error
		NewRecipePage(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategoryRecipes(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		AddUserRecipe(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		RemoveSave(c *fiber.Ctx) error
		GetSavedRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
		logger        *zap.Logger
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate, logger *zap.Logger) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
		logger:        logger,
	}
}

func (h *recipeHandler) Index(c *fiber.Ctx) error {
	return presenters.Render(c, fiber.StatusOK, "pages/index", fiber.Map{"Title": "Welcome"})
}

func (h *recipeHandler) NewRecipePage(c *fiber.Ctx) error {
	categories, err := h.recipeService.GetCategories(c.UserContext())
	if err != nil {
		h.logger.Error(domain.MessageFailedGetCategories, zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/new_recipe", fiber.Map{
		"Title":      "New recipe",
		"Categories": categories,
	})
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipes(c.UserContext())
	if err != nil {
		h.logger.Error(domain.MessageFailedGetRecipes, zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/recipes", fiber.Map{
		"Title":   "Recipes",
		"Recipes": recipes,
	})
}

func (h *recipeHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.recipeService.GetCategories(c.UserContext())
	if err != nil {
		h.logger.Error(domain.MessageFailedGetCategories, zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/categories", fiber.Map{
		"Title":      "Categories",
		"Categories": categories,
	})
}

func (h *recipeHandler) GetCategoryRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetCategoryRecipes(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.Error(domain.MessageFailedGetRecipes, zap.String("category_id", c.Params("id")), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/category_recipes", fiber.Map{
		"Title":    res.Category.Name,
		"Category": res.Category,
		"Recipes":  res.Recipes,
	})
}

// AddRecipe publishes a recipe without an author.
func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	if err := h.createRecipe(c, ""); err != nil {
		return presenters.RedirectWithFlash(c, "/new_recipe", h.createFailedMessage(err))
	}
	return presenters.RedirectWithFlash(c, "/recipes", domain.MessageSuccessAddGlobal)
}

func (h *recipeHandler) AddUserRecipe(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)
	if err := h.createRecipe(c, userID); err != nil {
		return presenters.RedirectWithFlash(c, "/login/home", h.createFailedMessage(err))
	}
	return presenters.RedirectWithFlash(c, "/login/home", domain.MessageSuccessAddRecipe)
}

func (h *recipeHandler) createRecipe(c *fiber.Ctx, authorID string) error {
	req, err := parseRecipeForm(c)
	if err != nil {
		return err
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	if _, err := h.recipeService.CreateRecipe(c.UserContext(), req, authorID); err != nil {
		h.logger.Warn("failed to create recipe",
			zap.String("author_id", authorID), zap.String("name", req.Name), zap.Error(err))
		return err
	}
	return nil
}

func (h *recipeHandler) createFailedMessage(err error) string {
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.MessageCategoryDoesNotExist
	}
	return domain.MessageFailedAddRecipe
}

// parseRecipeForm reads the recipe form from either an urlencoded or a
// multipart body. Ingredient rows are the parallel lists ingredient_name[],
// amount[] and unit[], paired up to the shortest list; rows without a name
// are skipped.
func parseRecipeForm(c *fiber.Ctx) (domain.CreateRecipeRequest, error) {
	req := domain.CreateRecipeRequest{
		Name:         strings.TrimSpace(c.FormValue("name")),
		Instructions: strings.TrimSpace(c.FormValue("instruction")),
		CategoryID:   strings.TrimSpace(c.FormValue("category_id")),
	}

	var err error
	if req.PrepTime, err = formInt(c, "prep_time"); err != nil {
		return req, err
	}
	if req.CookTime, err = formInt(c, "cook_time"); err != nil {
		return req, err
	}
	if req.Servings, err = formInt(c, "serving"); err != nil {
		return req, err
	}

	names := formValues(c, "ingredient_name[]")
	amounts := formValues(c, "amount[]")
	units := formValues(c, "unit[]")
	rows := min(len(names), len(amounts), len(units))
	for i := 0; i < rows; i++ {
		name := strings.TrimSpace(names[i])
		if name == "" {
			continue
		}
		req.Ingredients = append(req.Ingredients, domain.IngredientInput{
			Name:   name,
			Amount: strings.TrimSpace(amounts[i]),
			Unit:   strings.TrimSpace(units[i]),
		})
	}

	if image, err := c.FormFile("image"); err == nil && image.Size > 0 {
		req.Image = image
	}
	return req, nil
}

func formInt(c *fiber.Ctx, key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.FormValue(key)))
}

func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[key]
	}

	var values []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetAllRecipes(c.UserContext())
	if err != nil {
		h.logger.Error(domain.MessageFailedGetRecipes, zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/all_recipes", fiber.Map{
		"Title":   "All recipes",
		"Recipes": recipes,
	})
}

func (h *recipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)
	recipeID := c.Params("recipe_id")

	err := h.recipeService.SaveRecipe(c.UserContext(), recipeID, userID)
	switch {
	case err == nil:
		return presenters.RedirectWithFlash(c, "/loggedin_user_all_recipes", domain.MessageSuccessSaveRecipe)
	case errors.Is(err, domain.ErrRecipeAlreadySaved):
		return presenters.RedirectWithFlash(c, "/loggedin_user_all_recipes", domain.MessageRecipeAlreadySaved)
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.ErrNotFound
	default:
		h.logger.Error("failed to save recipe",
			zap.String("user_id", userID), zap.String("recipe_id", recipeID), zap.Error(err))
		return presenters.RedirectWithFlash(c, "/loggedin_user_all_recipes", domain.MessageFailedProcessRequest)
	}
}

func (h *recipeHandler) RemoveSave(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)
	recipeID := c.Params("recipe_id")

	if err := h.recipeService.RemoveSave(c.UserContext(), recipeID, userID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to remove saved recipe",
			zap.String("user_id", userID), zap.String("recipe_id", recipeID), zap.Error(err))
		return presenters.RedirectWithFlash(c, "/loggedin_user_saves", domain.MessageFailedProcessRequest)
	}
	return presenters.RedirectWithFlash(c, "/loggedin_user_saves", domain.MessageSuccessDeleteSave)
}

func (h *recipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals(domain.LocalUserID).(string)

	recipes, err := h.recipeService.GetSavedRecipes(c.UserContext(), userID)
	if err != nil {
		h.logger.Error(domain.MessageFailedGetRecipes, zap.String("user_id", userID), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return presenters.Render(c, fiber.StatusOK, "pages/saves", fiber.Map{
		"Title":   "Saved recipes",
		"Recipes": recipes,
	})
}
