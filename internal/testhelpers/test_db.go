package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	openSQLite = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	}
	migrateSchema       = func(db *gorm.DB) error { return db.AutoMigrate(&model.Category{}, &model.Question{}) }
	dropQuestionTableFn = func(db *gorm.DB) error { return db.Migrator().DropTable(&model.Question{}) }
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := openSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := migrateSchema(db); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedQuestions inserts categories and questions in order and returns the
// stored questions with their ids set.
func SeedQuestions(t *testing.T, db *gorm.DB, categories []model.Category, questions []model.Question) []model.Question {
	t.Helper()
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			panic(fmt.Sprintf("failed to seed category: %v", err))
		}
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			panic(fmt.Sprintf("failed to seed question: %v", err))
		}
	}
	return questions
}

// DropQuestionTable removes the questions table to force repository errors.
func DropQuestionTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := dropQuestionTableFn(db); err != nil {
		panic(fmt.Sprintf("failed to drop question table: %v", err))
	}
}
