package controller

import (
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// ListPublished godoc
// @Summary Published course catalogue
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} object
// @Router /api/courses [get]
func (c *CourseController) ListPublished(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	courses, total, err := c.CourseService.ListPublished(page, limit)
	if err != nil {
		respondError(ctx, "[COURSES]", err)
		return
	}
	util.Success(ctx, gin.H{"items": courses, "total": total})
}

// ListMine godoc
// @Summary Courses authored by the caller
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Course
// @Failure 401 {string} string "Unauthorized"
// @Router /api/teacher/courses [get]
func (c *CourseController) ListMine(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	courses, err := c.CourseService.ListMyCourses(user.UserID)
	if err != nil {
		respondError(ctx, "[COURSES]", err)
		return
	}
	util.Success(ctx, courses)
}

// CreateCourse godoc
// @Summary Create a draft course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body titleRequest true "course title"
// @Success 201 {object} model.Course
// @Failure 400 {string} string "invalid request"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req titleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(user.UserID, req.Title)
	if err != nil {
		respondError(ctx, "[COURSES]", err)
		return
	}
	util.Created(ctx, course)
}

// GetCourse godoc
// @Summary Course with chapters and lessons
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {object} model.Course
// @Failure 404 {string} string "Not Found"
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	course, err := c.CourseService.GetCourse(ctx.Param("courseId"), user.UserID)
	if err != nil {
		respondError(ctx, "[COURSE_ID]", err)
		return
	}
	util.Success(ctx, course)
}

// UpdateCourse godoc
// @Summary Update course fields or publish state
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body service.CourseReq true "fields to change"
// @Success 200 {object} model.Course
// @Failure 400 {string} string "Missing required fields"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.CourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(ctx.Param("courseId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[COURSE_ID]", err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and everything under it
// @Tags courses
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.CourseService.DeleteCourse(ctx.Param("courseId"), user.UserID); err != nil {
		respondError(ctx, "[COURSE_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// CreateChapter godoc
// @Summary Append a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body titleRequest true "chapter title"
// @Success 201 {object} model.Chapter
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters [post]
func (c *CourseController) CreateChapter(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req titleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.CourseService.CreateChapter(ctx.Param("courseId"), user.UserID, req.Title)
	if err != nil {
		respondError(ctx, "[CHAPTERS]", err)
		return
	}
	util.Created(ctx, chapter)
}

// UpdateChapter godoc
// @Summary Update chapter fields or publish state
// @Tags chapters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param body body service.ChapterReq true "fields to change"
// @Success 200 {object} model.Chapter
// @Failure 400 {string} string "Missing required fields"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId} [patch]
func (c *CourseController) UpdateChapter(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.ChapterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.CourseService.UpdateChapter(ctx.Param("courseId"), ctx.Param("chapterId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[CHAPTER_ID]", err)
		return
	}
	util.Success(ctx, chapter)
}

// DeleteChapter godoc
// @Summary Delete a chapter with its lessons and quizzes
// @Tags chapters
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId} [delete]
func (c *CourseController) DeleteChapter(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.CourseService.DeleteChapter(ctx.Param("courseId"), ctx.Param("chapterId"), user.UserID); err != nil {
		respondError(ctx, "[CHAPTER_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// ReorderChapters godoc
// @Summary Bulk update chapter positions
// @Tags chapters
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/chapters/reorder [put]
func (c *CourseController) ReorderChapters(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.ReorderChapters(ctx.Request.Context(), ctx.Param("courseId"), user.UserID, req.List); err != nil {
		respondError(ctx, "[REORDER]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// CreateLesson godoc
// @Summary Append a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param body body titleRequest true "lesson title"
// @Success 201 {object} model.Lesson
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/lessons [post]
func (c *CourseController) CreateLesson(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req titleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CourseService.CreateLesson(ctx.Param("courseId"), ctx.Param("chapterId"), user.UserID, req.Title)
	if err != nil {
		respondError(ctx, "[LESSONS]", err)
		return
	}
	util.Created(ctx, lesson)
}

// GetLesson godoc
// @Summary Read a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} model.Lesson
// @Failure 404 {string} string "Not Found"
// @Router /api/courses/{courseId}/chapters/{chapterId}/lessons/{lessonId} [get]
func (c *CourseController) GetLesson(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	lesson, err := c.CourseService.GetLesson(ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("lessonId"), user.UserID)
	if err != nil {
		respondError(ctx, "[LESSON_ID]", err)
		return
	}
	util.Success(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update lesson fields, video or publish state
// @Description The lesson video form sends {"videoUrl": "..."} once an upload completes.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param lessonId path string true "lesson id"
// @Param body body service.LessonReq true "fields to change"
// @Success 200 {object} model.Lesson
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/chapters/{chapterId}/lessons/{lessonId} [patch]
func (c *CourseController) UpdateLesson(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.CourseService.UpdateLesson(ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("lessonId"), user.UserID, req)
	if err != nil {
		respondError(ctx, "[LESSON_ID]", err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param lessonId path string true "lesson id"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/courses/{courseId}/chapters/{chapterId}/lessons/{lessonId} [delete]
func (c *CourseController) DeleteLesson(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.CourseService.DeleteLesson(ctx.Param("courseId"), ctx.Param("chapterId"), ctx.Param("lessonId"), user.UserID); err != nil {
		respondError(ctx, "[LESSON_ID]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}

// ReorderLessons godoc
// @Summary Bulk update lesson positions
// @Tags lessons
// @Accept json
// @Security ApiKeyAuth
// @Param courseId path string true "course id"
// @Param chapterId path string true "chapter id"
// @Param body body reorderRequest true "positions"
// @Success 200 {string} string "Success"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Error"
// @Router /api/courses/{courseId}/chapters/{chapterId}/lessons/reorder [put]
func (c *CourseController) ReorderLessons(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.ReorderLessons(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("chapterId"), user.UserID, req.List); err != nil {
		respondError(ctx, "[REORDER]", err)
		return
	}
	util.Text(ctx, http.StatusOK, "Success")
}
