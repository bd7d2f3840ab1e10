package controller

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReorderController serves the drag-and-drop option reorder endpoints.
type ReorderController struct {
	Reorder *service.ReorderService
}

func NewReorderController(reorder *service.ReorderService) *ReorderController {
	return &ReorderController{Reorder: reorder}
}

type reorderFunc func(ctx context.Context, parentID, questionID string, list []model.PositionUpdate) error

// reorderOptions answers 401 when there is no caller or when the question is
// not part of the assessment, 400 for a body that does not bind, 200 "Success"
// once every position is written and 500 "Internal Error" on any other failure.
func reorderOptions(ctx *gin.Context, parentParam string, apply reorderFunc) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	parentID := ctx.Param(parentParam)
	questionID := ctx.Param("questionId")
	err := apply(ctx.Request.Context(), parentID, questionID, req.List)
	switch {
	case err == nil:
		util.Text(ctx, http.StatusOK, "Success")
	case errors.Is(err, util.ErrQuestionNotFound):
		logger.Log.Info("[REORDER] question outside assessment",
			zap.Uint("userId", user.UserID),
			zap.String(parentParam, parentID),
			zap.String("questionId", questionID),
		)
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, "[REORDER]", err)
	}
}

// ReorderQuizOptions godoc
// @Summary Bulk update quiz option positions
// @Tags quiz
// @Accept json
// @Produce plain
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param quizId path string true "quiz id"
// @Param questionId path string true "question id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 400 {string} string "invalid body"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/chapters/{chapterId}/quiz/{quizId}/questions/{questionId}/options/reorder [put]
func (c *ReorderController) ReorderQuizOptions(ctx *gin.Context) {
	reorderOptions(ctx, "quizId", c.Reorder.ReorderQuizOptions)
}

// ReorderExamOptions godoc
// @Summary Bulk update exam option positions
// @Tags exam
// @Accept json
// @Produce plain
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param examId path string true "exam id"
// @Param questionId path string true "question id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 400 {string} string "invalid body"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/exam/{examId}/questions/{questionId}/options/reorder [put]
func (c *ReorderController) ReorderExamOptions(ctx *gin.Context) {
	reorderOptions(ctx, "examId", c.Reorder.ReorderExamOptions)
}
