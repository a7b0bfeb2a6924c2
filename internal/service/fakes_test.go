package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/repository"
)

var errStorage = errors.New("storage down")

type fakeQuestionRepo struct {
	questions []model.Question
	nextID    uint

	findErr   error
	createErr error
	deleteErr error
	searchErr error

	lastCategory int
	lastExclude  []int
}

func newFakeQuestionRepo(n int, category int) *fakeQuestionRepo {
	r := &fakeQuestionRepo{}
	for i := 0; i < n; i++ {
		r.add(model.Question{Question: "question", Answer: "answer", Category: category, Difficulty: 1})
	}
	return r
}

func (r *fakeQuestionRepo) add(q model.Question) {
	r.nextID++
	q.ID = r.nextID
	r.questions = append(r.questions, q)
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(*q)
	q.ID = r.nextID
	return nil
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, repository.ErrQuestionNotFound
}

func (r *fakeQuestionRepo) FindAll(context.Context) ([]model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]model.Question(nil), r.questions...), nil
}

func (r *fakeQuestionRepo) FindByCategory(_ context.Context, category int) ([]model.Question, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []model.Question
	for _, q := range r.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Search(_ context.Context, term string) ([]model.Question, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	var out []model.Question
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindQuizCandidates(_ context.Context, category int, exclude []int) ([]model.Question, error) {
	r.lastCategory = category
	r.lastExclude = exclude
	if r.findErr != nil {
		return nil, r.findErr
	}
	skip := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var out []model.Question
	for _, q := range r.questions {
		if category > 0 && q.Category != category {
			continue
		}
		if skip[int(q.ID)] {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return repository.ErrQuestionNotFound
}

func (r *fakeQuestionRepo) Count(context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

type fakeCategoryRepo struct {
	categories []model.Category
	err        error
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories, nil
}

func (r *fakeCategoryRepo) Count(context.Context) (int64, error) {
	return int64(len(r.categories)), r.err
}
