package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc service.CategoryService
	questionSvc service.QuestionService
	quizSvc     service.QuizService
	db          *gorm.DB // readiness probe only
}

func NewController(cSvc service.CategoryService, qSvc service.QuestionService, quizSvc service.QuizService, db *gorm.DB) *Controller {
	return &Controller{
		categorySvc: cSvc,
		questionSvc: qSvc,
		quizSvc:     quizSvc,
		db:          db,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound) })
	router.NoMethod(func(c *gin.Context) { abortWithError(c, http.StatusMethodNotAllowed) })

	router.GET("/healthz", ctrl.HealthzHandler)
	router.GET("/readyz", ctrl.ReadyzHandler)

	categories := router.Group("/categories")
	categories.GET("", ctrl.GetCategoriesHandler)
	categories.GET("/:category_id/questions", ctrl.GetQuestionsByCategoryHandler)

	questions := router.Group("/questions")
	questions.GET("", ctrl.GetQuestionsHandler)
	questions.POST("", ctrl.CreateQuestionHandler)
	questions.DELETE("/:id", ctrl.DeleteQuestionHandler)

	router.POST("/search", ctrl.SearchQuestionsHandler)
	router.POST("/quizzes", ctrl.PlayQuizHandler)
}

// GetCategoriesHandler godoc
// @Summary List all categories
// @Description Returns every category as an id to type map, ordered by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse "No categories exist"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	resp, err := ctrl.categorySvc.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsHandler godoc
// @Summary List questions, ten per page
// @Description Returns one page of questions ordered by id, together with all categories
// @Tags questions
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse "Page has no questions"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	page := service.ParsePage(c.Query("page"))

	resp, err := ctrl.questionSvc.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Removes a question and returns the remaining questions for the requested page
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Storage failure"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), uint(id), service.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description Inserts a new question and returns the questions for the requested page
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 422 {object} dto.ErrorResponse "Missing or invalid fields"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req, service.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing search term"
// @Failure 422 {object} dto.ErrorResponse "Storage failure"
// @Router /search [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SearchQuestionsRequest")
		abortWithError(c, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.questionSvc.SearchQuestions(c.Request.Context(), req.SearchTerm, service.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsByCategoryHandler godoc
// @Summary List questions in a category
// @Description Returns one page of questions whose category matches the path id
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "No questions in category"
// @Router /categories/{category_id}/questions [get]
func (ctrl *Controller) GetQuestionsByCategoryHandler(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 31)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.GetQuestionsByCategory(c.Request.Context(), int(categoryID), service.ParsePage(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PlayQuizHandler godoc
// @Summary Get the next quiz question
// @Description Picks a random question from the category (0 = all) that is not in previous_questions.
// @Description When none remain the error envelope is returned with HTTP 200.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Router /quizzes [post]
func (ctrl *Controller) PlayQuizHandler(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizRequest")
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := ctrl.quizSvc.NextQuestion(c.Request.Context(), req)
	if errors.Is(err, service.ErrNoMoreQuestions) {
		// Quiz clients read exhaustion from the body; status stays 200.
		c.JSON(http.StatusOK, dto.ErrorResponse{
			Success: false,
			Error:   http.StatusNotFound,
			Message: "No more question available",
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{Success: true, Question: question})
}
