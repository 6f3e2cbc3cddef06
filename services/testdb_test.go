package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quizzo/models"
)

// newTestDB opens a per-test in-memory database with foreign keys enforced,
// so cascade behaviour matches the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.FillBlankAnswer{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func createTestTeacher(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "not-a-real-hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create teacher %q: %v", username, err)
	}
	return user.ID
}
