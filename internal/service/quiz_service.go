package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuestionResponse, error)
}

type quizService struct {
	repo repository.QuestionRepository
	// pick returns an index in [0, n).
	pick func(n int) int
}

func NewQuizService(repo repository.QuestionRepository) QuizService {
	return &quizService{repo: repo, pick: rand.Intn}
}

// NewQuizServiceWithPicker is NewQuizService with a caller-supplied index
// chooser, used to make selection deterministic.
func NewQuizServiceWithPicker(repo repository.QuestionRepository, pick func(n int) int) QuizService {
	return &quizService{repo: repo, pick: pick}
}

func (s *quizService) NextQuestion(ctx context.Context, req dto.QuizRequest) (*dto.QuestionResponse, error) {
	category := req.CategoryID()

	candidates, err := s.repo.FindQuizCandidates(ctx, category, req.PreviousQuestions)
	if err != nil {
		log.Error().Err(err).Int("category", category).Msg("Failed to load quiz candidates")
		return nil, fmt.Errorf("error fetching quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		log.Debug().Int("category", category).Int("previous", len(req.PreviousQuestions)).Msg("Quiz exhausted")
		return nil, ErrNoMoreQuestions
	}

	return formatQuestion(&candidates[s.pick(len(candidates))])
}
