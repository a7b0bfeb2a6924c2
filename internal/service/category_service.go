package service

import (
	"context"
	"fmt"

	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load categories from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrNotFound)
	}

	return &dto.CategoriesResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		TotalCategories: len(categories),
	}, nil
}
