package controller

import (
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto the plain-text status codes the
// dashboard understands. tag prefixes the log line of unexpected failures.
func respondError(ctx *gin.Context, tag string, err error) {
	switch {
	case errors.Is(err, util.ErrUnauthorized):
		logger.Log.Info(tag+" ownership check failed",
			zap.String("path", ctx.Request.URL.Path), zap.Error(err))
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrChapterNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrExamNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrOptionNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPublishRequirements):
		util.BadRequest(ctx, "Missing required fields")
	case errors.Is(err, util.ErrEmptyText):
		util.BadRequest(ctx, "Text is required")
	case errors.Is(err, util.ErrInvalidUpload),
		errors.Is(err, util.ErrUnknownUploadTarget):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUploadTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, "File too large")
	default:
		util.LogInternalError(ctx, tag, err)
	}
}

// currentUser aborts with 401 when no caller is attached.
func currentUser(ctx *gin.Context) (*util.Claims, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return user, true
}

type titleRequest struct {
	Title string `json:"title" binding:"required,min=1"`
}

type reorderRequest struct {
	List []model.PositionUpdate `json:"list" binding:"required,dive"`
}
