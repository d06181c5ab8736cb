package repository

import (
	"testing"
	"time"

	"github.com/Ladynads/creaverse/internal/database"
	"github.com/Ladynads/creaverse/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full
// schema. A single underlying connection keeps the in-memory database
// stable and serializes concurrent writers the way Postgres row locks do.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
		LastSeen: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, user *models.User, content string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:  user.ID,
		Content: content,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
