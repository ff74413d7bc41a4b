package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	RecipeListLimit = 8
)

var (
	MessageSuccessAddRecipe     = "New recipe added."
	MessageSuccessAddGlobal     = "You've just added a new recipe!"
	MessageSuccessSaveRecipe    = "You successfully saved the recipe."
	MessageSuccessDeleteSave    = "You successfully deleted it from your folder."
	MessageRecipeAlreadySaved   = "This recipe was already in your folder."
	MessageFailedAddRecipe      = "Please fill in correct information."
	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedGetCategories  = "failed to get categories"
	MessageCategoryDoesNotExist = "That category does not exist."

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrRecipeAlreadySaved  = errors.New("recipe already saved")
	ErrDuplicateIngredient = errors.New("ingredient listed more than once")
	ErrInvalidImageFormat  = errors.New("invalid image format")
)

type (
	IngredientInput struct {
		Name   string `validate:"required,max=100"`
		Amount string `validate:"required,max=50"`
		Unit   string `validate:"max=50"`
	}

	CreateRecipeRequest struct {
		Name         string            `validate:"required,max=255"`
		Instructions string            `validate:"required"`
		PrepTime     int               `validate:"min=0"`
		CookTime     int               `validate:"min=0"`
		Servings     int               `validate:"min=1"`
		CategoryID   string            `validate:"omitempty"`
		Ingredients  []IngredientInput `validate:"dive"`
		Image        *multipart.FileHeader
	}

	Category struct {
		ID   string
		Name string
	}

	Recipe struct {
		ID           string
		Name         string
		Instructions string
		PrepTime     int
		CookTime     int
		Servings     int
		ImageURL     string
		Author       string
		Ingredients  string
		CreatedAt    time.Time
		SavedAt      time.Time
	}

	CategoryRecipes struct {
		Category Category
		Recipes  []Recipe
	}
)
