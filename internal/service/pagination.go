package service

import (
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
)

const QuestionsPerPage = 10

// ParsePage reads a 1-based page number. Missing or non-integer input
// falls back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the window [(page-1)*10, page*10) of items. Pages below
// 1 or past the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func formatQuestions(questions []model.Question) ([]dto.QuestionResponse, error) {
	out := []dto.QuestionResponse{}
	if len(questions) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, err
	}
	return out, nil
}

func formatQuestion(question *model.Question) (*dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, err
	}
	return &resp, nil
}

func categoryMap(categories []model.Category) dto.CategoryMap {
	out := make(dto.CategoryMap, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
