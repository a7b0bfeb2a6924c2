package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CreateQuestionRequest is the body of POST /questions. Difficulty and
// Category are pointers so that an absent field fails binding while an
// explicit 0 is still accepted.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Difficulty *int   `json:"difficulty" binding:"required"`
	Category   *int   `json:"category" binding:"required"`
}

// SearchQuestionsRequest is the body of POST /search.
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the category a quiz is played in. ID 0 means all.
type QuizCategory struct {
	Type string      `json:"type,omitempty"`
	ID   FlexibleInt `json:"id"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// CategoryID returns the requested category, 0 when none was sent.
func (r QuizRequest) CategoryID() int {
	if r.QuizCategory == nil {
		return 0
	}
	return int(r.QuizCategory.ID)
}

// FlexibleInt accepts a JSON number or a numeric string. Quiz clients send
// category ids both ways.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}
