package dto

// QuestionResponse is the formatted shape of a question in every payload.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryMap maps category id to its type label.
type CategoryMap map[uint]string

type CategoriesResponse struct {
	Success         bool        `json:"success"`
	Categories      CategoryMap `json:"categories"`
	TotalCategories int         `json:"total_categories"`
}

type QuestionListResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	Categories     CategoryMap        `json:"categories"`
	TotalQuestions int                `json:"total_questions"`
}

type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success                  bool               `json:"success"`
	Questions                []QuestionResponse `json:"questions"`
	TotalQuestionsInCategory int                `json:"total_questions_in_category"`
}

type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// ErrorResponse is the envelope for every failure, including the quiz
// exhaustion case which is sent with HTTP 200.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
