package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, id uint, page int) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	GetQuestionsByCategory(ctx context.Context, category int, page int) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo}
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	current, err := formatQuestions(Paginate(questions, page))
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: page %d has no questions", ErrNotFound, page)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      current,
		Categories:     categoryMap(categories),
		TotalQuestions: len(questions),
	}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint, page int) (*dto.DeleteQuestionResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, s.deleteError(id, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, s.deleteError(id, err)
	}

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to reload questions after delete")
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	current, err := formatQuestions(Paginate(questions, page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}

	log.Info().Uint("id", id).Msg("Question deleted")
	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      current,
		TotalQuestions: len(questions),
	}, nil
}

func (s *questionService) deleteError(id uint, err error) error {
	if errors.Is(err, repository.ErrQuestionNotFound) {
		return fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	log.Error().Err(err).Uint("id", id).Msg("Failed to delete question")
	return fmt.Errorf("%w: %v", ErrUnprocessable, err)
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("%w: question and answer are required", ErrUnprocessable)
	}
	if req.Difficulty == nil || req.Category == nil {
		return nil, fmt.Errorf("%w: difficulty and category are required", ErrUnprocessable)
	}

	question := model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Uint("id", question.ID).Msg("Failed to reload questions after create")
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	current, err := formatQuestions(Paginate(questions, page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}

	log.Info().Uint("id", question.ID).Int("category", question.Category).Msg("Question created")
	return &dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      current,
		TotalQuestions: len(questions),
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: searchTerm is required", ErrBadRequest)
	}

	questions, err := s.repo.Search(ctx, term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("Failed to search questions")
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	current, err := formatQuestions(Paginate(questions, page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, category int, page int) (*dto.CategoryQuestionsResponse, error) {
	questions, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		log.Error().Err(err).Int("category", category).Msg("Failed to load questions for category")
		return nil, fmt.Errorf("error fetching questions for category %d: %w", category, err)
	}

	current, err := formatQuestions(Paginate(questions, page))
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: no questions in category %d on page %d", ErrNotFound, category, page)
	}

	return &dto.CategoryQuestionsResponse{
		Success:                  true,
		Questions:                current,
		TotalQuestionsInCategory: len(questions),
	}, nil
}
