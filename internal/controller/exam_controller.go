package controller

import (
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// CreateExam godoc
// @Summary Create a course exam
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body titleRequest true "exam title"
// @Success 201 {object} model.Exam
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req titleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.CreateExam(ctx.Param("courseId"), user.UserID, req.Title)
	if err != nil {
		respondError(ctx, "[EXAM]", err)
		return
	}
	util.Created(ctx, exam)
}

// GetExam godoc
// @Summary Exam with ordered questions and options
// @Tags exam
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Success 200 {object} model.Exam
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	exam, err := c.ExamService.GetExam(ctx.Param("courseId"), ctx.Param("examId"), user.UserID)
	if err != nil {
		respondError(ctx, "[EXAM_ID]", err)
		return
	}
	util.Success(ctx, exam)
}

// UpdateExam godoc
// @Summary Update exam fields or publish state
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param body body service.ExamReq true "fields to change"
// @Success 200 {object} model.Exam
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId} [patch]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.ExamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.UpdateExam(ctx.Param("courseId"), ctx.Param("examId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[EXAM_ID]", err)
		return
	}
	util.Success(ctx, exam)
}

// CreateQuestion godoc
// @Summary Append an exam question
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param body body promptRequest true "question prompt"
// @Success 201 {object} model.ExamQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions [post]
func (c *ExamController) CreateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req promptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ExamService.CreateQuestion(ctx.Param("courseId"), ctx.Param("examId"), user.UserID, req.Prompt)
	if err != nil {
		respondError(ctx, "[QUESTIONS]", err)
		return
	}
	util.Created(ctx, q)
}

// GetQuestion godoc
// @Summary Exam question with its ordered options
// @Tags exam
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Success 200 {object} model.ExamQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId} [get]
func (c *ExamController) GetQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	q, err := c.ExamService.GetQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), user.UserID)
	if err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Success(ctx, q)
}

// UpdateQuestion godoc
// @Summary Edit an exam question prompt
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Param body body service.QuestionReq true "fields to change"
// @Success 200 {object} model.ExamQuestion
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId} [patch]
func (c *ExamController) UpdateQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ExamService.UpdateQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete an exam question and its options
// @Tags exam
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId} [delete]
func (c *ExamController) DeleteQuestion(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.ExamService.DeleteQuestion(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), user.UserID); err != nil {
		respondError(ctx, "[QUESTION_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// ReorderQuestions godoc
// @Summary Bulk update exam question positions
// @Tags exam
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/exam/{examId}/questions/reorder [put]
func (c *ExamController) ReorderQuestions(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ExamService.ReorderQuestions(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), user.UserID, req.List); err != nil {
		respondError(ctx, "[REORDER]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// CreateOption godoc
// @Summary Append an answer option
// @Description Used by the option form; error bodies are shown to the author as-is.
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Param body body optionRequest true "option text"
// @Success 201 {object} model.ExamQuestionOption
// @Failure 400 {string} string "invalid body"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId}/options [post]
func (c *ExamController) CreateOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req optionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.ExamService.CreateOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), user.UserID, req.Text)
	if err != nil {
		respondError(ctx, "[OPTIONS]", err)
		return
	}
	util.Created(ctx, o)
}

// UpdateOption godoc
// @Summary Edit an option; marking it correct clears its siblings
// @Tags exam
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Param optionId path string true "option id"
// @Param body body service.OptionReq true "fields to change"
// @Success 200 {object} model.ExamQuestionOption
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId}/options/{optionId} [patch]
func (c *ExamController) UpdateOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.OptionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	o, err := c.ExamService.UpdateOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), ctx.Param("optionId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[OPTION_ID]", err)
		return
	}
	util.Success(ctx, o)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags exam
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Param optionId path string true "option id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId}/options/{optionId} [delete]
func (c *ExamController) DeleteOption(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.ExamService.DeleteOption(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("examId"), ctx.Param("questionId"), ctx.Param("optionId"), user.UserID); err != nil {
		respondError(ctx, "[OPTION_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}
