package recipe

import (
	"context"
	"fmt"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/metrics"
	"recipebox/internal/utils/storage"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.Recipe, error)
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetCategories(ctx context.Context) ([]domain.Category, error)
		GetCategoryRecipes(ctx context.Context, categoryID string) (domain.CategoryRecipes, error)
		GetUserRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
		SaveRecipe(ctx context.Context, recipeID string, userID string) error
		RemoveSave(ctx context.Context, recipeID string, userID string) error
		GetSavedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
		logger           *zap.Logger
	}
)

const imageFolder = "recipes"

// NewRecipeService accepts a nil s3; uploaded images are then ignored.
func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3, logger *zap.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
		logger:           logger,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.Recipe, error) {
	recipe := &entities.Recipe{
		Name:         strings.TrimSpace(req.Name),
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
	}

	if authorID != "" {
		authorUUID, err := uuid.Parse(authorID)
		if err != nil {
			return domain.Recipe{}, domain.ErrParseUUID
		}
		recipe.UserID = &authorUUID
	}

	var categoryID *uuid.UUID
	if c := strings.TrimSpace(req.CategoryID); c != "" && c != domain.NoCategory {
		parsed, err := uuid.Parse(c)
		if err != nil {
			return domain.Recipe{}, domain.ErrCategoryNotFound
		}
		categoryID = &parsed
	}

	seen := make(map[string]struct{}, len(req.Ingredients))
	for i, in := range req.Ingredients {
		name := strings.TrimSpace(in.Name)
		if _, ok := seen[name]; ok {
			return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrDuplicateIngredient, name)
		}
		seen[name] = struct{}{}

		recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
			IngredientName: name,
			Amount:         strings.TrimSpace(in.Amount),
			Position:       i,
			Ingredient: &entities.Ingredient{
				Name: name,
				Unit: strings.TrimSpace(in.Unit),
			},
		})
	}

	var objectKey string
	if req.Image != nil && s.s3 != nil {
		key, err := s.s3.UploadFile(ctx, imageFolder, req.Image, storage.AllowImage...)
		if err != nil {
			if err == storage.ErrFileTypeNotAllowed {
				return domain.Recipe{}, domain.ErrInvalidImageFormat
			}
			return domain.Recipe{}, fmt.Errorf("upload recipe image: %w", err)
		}
		objectKey = key
		recipe.ImageURL = s.s3.GetPublicLinkKey(key)
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, categoryID); err != nil {
		if objectKey != "" {
			if delErr := s.s3.DeleteFile(ctx, objectKey); delErr != nil {
				s.logger.Warn("failed to remove orphaned recipe image",
					zap.String("object_key", objectKey), zap.Error(delErr))
			}
		}
		return domain.Recipe{}, err
	}

	metrics.RecipesCreated.Inc()
	return toRecipe(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, domain.RecipeListLimit)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.recipeRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.Category{ID: c.ID.String(), Name: c.Name})
	}
	return result, nil
}

func (s *recipeService) GetCategoryRecipes(ctx context.Context, categoryID string) (domain.CategoryRecipes, error) {
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return domain.CategoryRecipes{}, domain.ErrCategoryNotFound
	}

	category, err := s.recipeRepository.GetCategoryByID(ctx, categoryUUID)
	if err != nil {
		return domain.CategoryRecipes{}, err
	}

	recipes, err := s.recipeRepository.GetRecipesByCategory(ctx, categoryUUID)
	if err != nil {
		return domain.CategoryRecipes{}, err
	}

	return domain.CategoryRecipes{
		Category: domain.Category{ID: category.ID.String(), Name: category.Name},
		Recipes:  toRecipes(recipes),
	}, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetAuthoredRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, recipeID string, userID string) error {
	userUUID, recipeUUID, err := parsePair(userID, recipeID)
	if err != nil {
		return err
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID); err != nil {
		return err
	}

	created, err := s.recipeRepository.SaveRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrRecipeAlreadySaved
	}

	metrics.RecipeSaves.Inc()
	return nil
}

func (s *recipeService) RemoveSave(ctx context.Context, recipeID string, userID string) error {
	userUUID, recipeUUID, err := parsePair(userID, recipeID)
	if err != nil {
		return err
	}
	return s.recipeRepository.RemoveSave(ctx, userUUID, recipeUUID)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	saves, err := s.recipeRepository.GetSavedRecipes(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(saves))
	for _, save := range saves {
		if save.Recipe == nil {
			continue
		}
		recipe := toRecipe(save.Recipe)
		recipe.SavedAt = save.SavedAt
		result = append(result, recipe)
	}
	return result, nil
}

func parsePair(userID, recipeID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrRecipeNotFound
	}
	return userUUID, recipeUUID, nil
}

// FormatIngredients renders usages as "Name: amount unit" entries joined by
// "; ". Names are title-cased for display only.
func FormatIngredients(usages []*entities.RecipeIngredient) string {
	caser := cases.Title(language.English)
	parts := make([]string, 0, len(usages))
	for _, u := range usages {
		unit := ""
		if u.Ingredient != nil {
			unit = u.Ingredient.Unit
		}
		entry := fmt.Sprintf("%s: %s %s", caser.String(u.IngredientName), u.Amount, unit)
		parts = append(parts, strings.TrimSpace(entry))
	}
	return strings.Join(parts, "; ")
}

func toRecipe(r *entities.Recipe) domain.Recipe {
	recipe := domain.Recipe{
		ID:           r.ID.String(),
		Name:         r.Name,
		Instructions: r.Instructions,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		ImageURL:     r.ImageURL,
		Ingredients:  FormatIngredients(r.Ingredients),
		CreatedAt:    r.CreatedAt,
	}
	if r.User != nil {
		recipe.Author = r.User.Username
	}
	return recipe
}

func toRecipes(recipes []*entities.Recipe) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipe(r))
	}
	return result
}
