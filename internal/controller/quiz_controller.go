package controller

import (
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type promptRequest struct {
	Prompt string `json:"prompt" binding:"required,min=1"`
}

type optionRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// CreateQuiz godoc
// @Summary Attach a quiz to a chapter
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param body body titleRequest true "quiz title"
// @Success 201 {object} model.Quiz
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req titleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(ctx.Param("courseId"), ctx.Param("chapterId"), user.UserID, req.Title)
	if err != nil {
		respondError(ctx, "[QUIZ]", err)
		return
	}
	util.Created(ctx, quiz)
}

// GetQuiz godoc
// @Summary Quiz with ordered questions and options
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Success 200 {object} model.Quiz
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not Found"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	quiz, err := c.QuizService.GetQuiz(ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), user.UserID)
	if err != nil {
		respondError(ctx, "[QUIZ_ID]", err)
		return
	}
	util.Success(ctx, quiz)
}

// CreateQuestion godoc
// @Summary Append a quiz question
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param body body promptRequest true "question prompt"
// @Success 201 {object} model.QuizQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req promptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.CreateQuestion(ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), user.UserID, req.Prompt)
	if err != nil {
		respondError(ctx, "[QUESTIONS]", err)
		return
	}
	util.Created(ctx, q)
}

// GetQuestion godoc
// @Summary Quiz question with its ordered options
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Success 200 {object} model.QuizQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	q, err := c.QuizService.GetQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), user.UserID)
	if err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Success(ctx, q)
}

// UpdateQuestion godoc
// @Summary Edit a quiz question prompt
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param body body service.QuestionReq true "fields to change"
// @Success 200 {object} model.QuizQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId} [patch]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.UpdateQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a quiz question and its options
// @Tags quiz
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.QuizService.DeleteQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), user.UserID); err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// ReorderQuestions godoc
// @Summary Bulk update quiz question positions
// @Tags quiz
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/reorder [put]
func (c *QuizController) ReorderQuestions(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.QuizService.ReorderQuestions(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), user.UserID, req.List)
	if err != nil {
		respondError(ctx, "[REORDER]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// CreateOption godoc
// @Summary Append an answer option
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param body body optionRequest true "option text"
// @Success 201 {object} model.QuizQuestionOption
// @Failure 400 {string} string "invalid body"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId}/options [post]
func (c *QuizController) CreateOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req optionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.QuizService.CreateOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), user.UserID, req.Text)
	if err != nil {
		respondError(ctx, "[OPTIONS]", err)
		return
	}
	util.Created(ctx, o)
}

// UpdateOption godoc
// @Summary Edit an option; marking it correct clears its siblings
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param optionId path string true "option id"
// @Param body body service.OptionReq true "fields to change"
// @Success 200 {object} model.QuizQuestionOption
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId}/options/{optionId} [patch]
func (c *QuizController) UpdateOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.OptionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.QuizService.UpdateOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), ctx.Param("optionId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[OPTION_ID]", err)
		return
	}
	util.Success(ctx, o)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags quiz
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param optionId path string true "option id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId}/options/{optionId} [delete]
func (c *QuizController) DeleteOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.QuizService.DeleteOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("quizId"), ctx.Param("questionId"), ctx.Param("optionId"), user.UserID); err != nil {
		respondError(ctx, "[OPTION_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}
