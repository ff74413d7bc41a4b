package recipe

import (
	"context"
	"errors"
	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryID *uuid.UUID) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetAuthoredRecipes(ctx context.Context) ([]*entities.Recipe, error)

		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)

		SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		RemoveSave(ctx context.Context, userID, recipeID uuid.UUID) error
		GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Save, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func withIngredients(prefix string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Preload(prefix+"Ingredients", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Preload(prefix + "Ingredients.Ingredient")
	}
}

// CreateRecipe writes the recipe, its optional category link, any unknown
// ingredients and one usage row per ingredient in a single transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryID *uuid.UUID) error {
	usages := recipe.Ingredients

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}

		if categoryID != nil {
			var count int64
			if err := tx.Model(&entities.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrCategoryNotFound
			}
			link := entities.RecipeCategory{RecipeID: recipe.ID, CategoryID: *categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		for _, usage := range usages {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(usage.Ingredient).Error; err != nil {
				return err
			}

			usage.RecipeID = recipe.ID
			if err := tx.Omit(clause.Associations).Create(usage).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withIngredients("")).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withIngredients("")).
		Order("created_at ASC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withIngredients("")).
		Joins("JOIN recipe_categories ON recipes.id = recipe_categories.recipe_id").
		Where("recipe_categories.category_id = ?", categoryID).
		Order("recipes.created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withIngredients("")).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetAuthoredRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(withIngredients("")).
		Preload("User").
		Where("user_id IS NOT NULL").
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// SaveRecipe reports false when the pair already exists. The primary key on
// (user_id, recipe_id) settles concurrent saves.
func (r *recipeRepository) SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	save := entities.Save{UserID: userID, RecipeID: recipeID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&save)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipeRepository) RemoveSave(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Save{}).Error
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Save, error) {
	var saves []*entities.Save
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Scopes(withIngredients("Recipe.")).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&saves).Error; err != nil {
		return nil, err
	}
	return saves, nil
}
