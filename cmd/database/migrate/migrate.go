package migration

import (
	"fmt"
	"recipebox/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DefaultCategories = []string{
	"Breakfast",
	"Lunch",
	"Dinner",
	"Dessert",
	"Vegetarian",
	"Snacks",
}

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Membership{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.RecipeCategory{},
		&entities.Ingredient{},
		&entities.RecipeIngredient{},
		&entities.Save{},
		&entities.Review{},
		&entities.Announcement{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	return SeedCategories(db)
}

func SeedCategories(db *gorm.DB) error {
	for _, name := range DefaultCategories {
		category := entities.Category{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error; err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
	}
	return nil
}
