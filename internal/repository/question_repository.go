package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindAll(ctx context.Context) ([]model.Question, error)
	FindByCategory(ctx context.Context, category int) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	FindQuizCandidates(ctx context.Context, category int, excludeIDs []int) ([]model.Question, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategory(ctx context.Context, category int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches term as a case-insensitive substring of the question text.
// LIKE wildcards inside term are matched literally.
func (r *questionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	var questions []model.Question

	if r.db.Dialector.Name() == "postgres" {
		err := r.db.WithContext(ctx).
			Where(`question ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%").
			Order("id ASC").
			Find(&questions).Error
		if err != nil {
			return nil, err
		}
		return questions, nil
	}

	// SQLite's LOWER only folds ASCII, so matching happens in Go.
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	matched := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

// FindQuizCandidates returns questions not in excludeIDs, restricted to
// category when category > 0.
func (r *questionRepository) FindQuizCandidates(ctx context.Context, category int, excludeIDs []int) ([]model.Question, error) {
	var questions []model.Question

	query := r.db.WithContext(ctx)
	if category > 0 {
		query = query.Where("category = ?", category)
	}
	// NOT IN with an empty list renders as NOT IN (NULL), which matches nothing.
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Count(&count).Error
	return count, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
