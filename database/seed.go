package database

import (
	"context"
	"fmt"
	"os"

	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedData is the layout of a seed file.
type SeedData struct {
	Categories []SeedCategory `yaml:"categories"`
	Questions  []SeedQuestion `yaml:"questions"`
}

type SeedCategory struct {
	ID   uint   `yaml:"id"`
	Type string `yaml:"type"`
}

type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Category   int    `yaml:"category"`
	Difficulty int    `yaml:"difficulty"`
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// Seed inserts data in a single transaction when both tables are empty.
// It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB, data *SeedData) (bool, error) {
	questionCount, err := repository.NewQuestionRepository(db).Count(ctx)
	if err != nil {
		return false, err
	}
	categoryCount, err := repository.NewCategoryRepository(db).Count(ctx)
	if err != nil {
		return false, err
	}
	if questionCount > 0 || categoryCount > 0 {
		log.Info().Int64("questions", questionCount).Int64("categories", categoryCount).Msg("Store already populated, skipping seed")
		return false, nil
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range data.Categories {
			if err := tx.Create(&model.Category{ID: c.ID, Type: c.Type}).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", c.Type, err)
			}
		}
		for _, q := range data.Questions {
			question := model.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   q.Category,
				Difficulty: q.Difficulty,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("seed question %q: %w", q.Question, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info().Int("categories", len(data.Categories)).Int("questions", len(data.Questions)).Msg("Seed data inserted")
	return true, nil
}
