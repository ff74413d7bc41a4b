// Package testutil provides an isolated, migrated database for tests.
package testutil

import (
	"context"
	"recipebox/cmd/database/migrate"
	"recipebox/entities"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database and applies the same
// migration the server runs against PostgreSQL. A single connection keeps
// every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

// CreateUser inserts a user whose password is hashed with the minimum bcrypt
// cost.
func CreateUser(t *testing.T, db *gorm.DB, username, password string) *entities.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{Username: username, Password: string(hash)}
	require.NoError(t, db.WithContext(context.Background()).Create(user).Error)
	return user
}

// CategoryByName returns one of the seeded categories.
func CategoryByName(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()

	var category entities.Category
	require.NoError(t, db.Where("name = ?", name).First(&category).Error)
	return &category
}
