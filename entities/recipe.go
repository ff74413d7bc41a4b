package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	PrepTime     int        `json:"prep_time"`
	CookTime     int        `json:"cook_time"`
	Servings     int        `json:"servings"`
	ImageURL     string     `json:"image_url,omitempty"`

	User        *User               `gorm:"foreignKey:UserID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

// Ingredient is keyed by its exact name; "Salt" and "salt" are different rows.
type Ingredient struct {
	Name string `gorm:"size:100;primaryKey" json:"name"`
	Unit string `gorm:"size:50" json:"unit"`
}

type RecipeIngredient struct {
	RecipeID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientName string    `gorm:"size:100;primaryKey" json:"ingredient_name"`
	Amount         string    `gorm:"size:50;not null" json:"amount"`
	Position       int       `json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientName;references:Name"`
}

type Save struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	SavedAt  time.Time `gorm:"autoCreateTime;index" json:"saved_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
