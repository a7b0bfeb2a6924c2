package service

import (
	"context"
	"testing"

	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetCategories(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{categories: []model.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}})

	resp, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, dto.CategoryMap{1: "Science", 2: "Art"}, resp.Categories)
	assert.Equal(t, 2, resp.TotalCategories)
}

func TestCategoryService_NoCategories(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	_, err := svc.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryService_StorageError(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{err: errStorage})

	_, err := svc.GetCategories(context.Background())
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrNotFound)
}
