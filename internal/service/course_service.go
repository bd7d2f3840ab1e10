package service

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/logger"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo  *repository.CourseRepository
	ChapterRepo *repository.ChapterRepository
	LessonRepo  *repository.LessonRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, chapterRepo *repository.ChapterRepository, lessonRepo *repository.LessonRepository) *CourseService {
	return &CourseService{
		CourseRepo:  courseRepo,
		ChapterRepo: chapterRepo,
		LessonRepo:  lessonRepo,
	}
}

type CourseReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Price       *int64  `json:"price"`
	IsPublished *bool   `json:"isPublished"`
}

type ChapterReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsFree      *bool   `json:"isFree"`
	IsPublished *bool   `json:"isPublished"`
}

type LessonReq struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	VideoURL    *string         `json:"videoUrl"`
	VideoMeta   *datatypes.JSON `json:"videoMeta"`
	IsPublished *bool           `json:"isPublished"`
}

// mapNotFound turns gorm's not-found into the given sentinel.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *CourseService) CreateCourse(userID uint, title string) (*model.Course, error) {
	if blank(title) {
		return nil, util.ErrEmptyText
	}
	course := &model.Course{
		UserID: userID,
		Title:  strings.TrimSpace(title),
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListMyCourses(userID uint) ([]model.Course, error) {
	return s.CourseRepo.ListByUser(userID)
}

func (s *CourseService) ListPublished(page, limit int) ([]model.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.CourseRepo.ListPublished(page, limit)
}

// OwnedCourse returns util.ErrUnauthorized for a course that does not exist or
// belongs to someone else.
func (s *CourseService) OwnedCourse(courseID string, userID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindOwned(courseID, userID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrUnauthorized)
	}
	return course, nil
}

func (s *CourseService) OwnedChapter(courseID, chapterID string, userID uint) (*model.Chapter, error) {
	if _, err := s.OwnedCourse(courseID, userID); err != nil {
		return nil, err
	}
	chapter, err := s.ChapterRepo.FindInCourse(chapterID, courseID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrChapterNotFound)
	}
	return chapter, nil
}

// GetCourse returns the full tree to the owner and the published subset to
// everyone else.
func (s *CourseService) GetCourse(courseID string, userID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrCourseNotFound)
	}

	owner := course.UserID == userID
	if !owner && !course.IsPublished {
		return nil, util.ErrCourseNotFound
	}

	tree, err := s.CourseRepo.FindTree(courseID, !owner)
	if err != nil {
		return nil, mapNotFound(err, util.ErrCourseNotFound)
	}
	return tree, nil
}

func (s *CourseService) UpdateCourse(courseID string, userID uint, req CourseReq) (*model.Course, error) {
	course, err := s.OwnedCourse(courseID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		course.Title = *req.Title
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		course.ImageURL = *req.ImageURL
		fields["image_url"] = *req.ImageURL
	}
	if req.Price != nil {
		course.Price = *req.Price
		fields["price"] = *req.Price
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			published, err := s.CourseRepo.CountPublishedChapters(courseID)
			if err != nil {
				return nil, err
			}
			if blank(course.Title) || blank(course.Description) || blank(course.ImageURL) || published == 0 {
				return nil, util.ErrPublishRequirements
			}
		}
		course.IsPublished = *req.IsPublished
		fields["is_published"] = *req.IsPublished
	}

	if len(fields) == 0 {
		return course, nil
	}
	if err := s.CourseRepo.Update(course, fields); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(courseID string, userID uint) error {
	if _, err := s.OwnedCourse(courseID, userID); err != nil {
		return err
	}
	return s.CourseRepo.Delete(courseID)
}

func (s *CourseService) CreateChapter(courseID string, userID uint, title string) (*model.Chapter, error) {
	if blank(title) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.OwnedCourse(courseID, userID); err != nil {
		return nil, err
	}
	chapter := &model.Chapter{
		CourseID: courseID,
		Title:    strings.TrimSpace(title),
	}
	if err := s.ChapterRepo.Create(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *CourseService) UpdateChapter(courseID, chapterID string, userID uint, req ChapterReq) (*model.Chapter, error) {
	chapter, err := s.OwnedChapter(courseID, chapterID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		chapter.Title = *req.Title
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		chapter.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.IsFree != nil {
		chapter.IsFree = *req.IsFree
		fields["is_free"] = *req.IsFree
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			lessons, err := s.ChapterRepo.CountLessons(chapterID)
			if err != nil {
				return nil, err
			}
			if blank(chapter.Title) || lessons == 0 {
				return nil, util.ErrPublishRequirements
			}
		}
		chapter.IsPublished = *req.IsPublished
		fields["is_published"] = *req.IsPublished
	}

	if len(fields) == 0 {
		return chapter, nil
	}
	if err := s.ChapterRepo.Update(chapter, fields); err != nil {
		return nil, err
	}

	if req.IsPublished != nil && !*req.IsPublished {
		s.unpublishIfEmpty(courseID)
	}
	return chapter, nil
}

func (s *CourseService) DeleteChapter(courseID, chapterID string, userID uint) error {
	if _, err := s.OwnedChapter(courseID, chapterID, userID); err != nil {
		return err
	}
	if err := s.ChapterRepo.Delete(chapterID); err != nil {
		return err
	}
	s.unpublishIfEmpty(courseID)
	return nil
}

// unpublishIfEmpty takes a course offline once it has no published chapter left.
func (s *CourseService) unpublishIfEmpty(courseID string) {
	published, err := s.CourseRepo.CountPublishedChapters(courseID)
	if err != nil {
		logger.Log.Warn("count published chapters", zap.String("courseId", courseID), zap.Error(err))
		return
	}
	if published > 0 {
		return
	}
	course := &model.Course{UUIDBase: model.UUIDBase{ID: courseID}}
	if err := s.CourseRepo.Update(course, map[string]interface{}{"is_published": false}); err != nil {
		logger.Log.Warn("unpublish course", zap.String("courseId", courseID), zap.Error(err))
	}
}

func (s *CourseService) ReorderChapters(ctx context.Context, courseID string, userID uint, list []model.PositionUpdate) error {
	if _, err := s.OwnedCourse(courseID, userID); err != nil {
		return err
	}
	err := s.ChapterRepo.Reorder(ctx, courseID, list)
	recordReorder("chapter", len(list), err)
	return err
}

func (s *CourseService) CreateLesson(courseID, chapterID string, userID uint, title string) (*model.Lesson, error) {
	if blank(title) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.OwnedChapter(courseID, chapterID, userID); err != nil {
		return nil, err
	}
	lesson := &model.Lesson{
		ChapterID: chapterID,
		Title:     strings.TrimSpace(title),
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// GetLesson lets the owner read drafts. Learners need a published course and
// lesson inside a chapter that is published or marked free.
func (s *CourseService) GetLesson(courseID, chapterID, lessonID string, userID uint) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrCourseNotFound)
	}
	chapter, err := s.ChapterRepo.FindInCourse(chapterID, courseID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrChapterNotFound)
	}
	lesson, err := s.LessonRepo.FindInChapter(lessonID, chapterID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrLessonNotFound)
	}

	if course.UserID == userID {
		return lesson, nil
	}
	if !course.IsPublished || !lesson.IsPublished || !(chapter.IsPublished || chapter.IsFree) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, nil
}

func (s *CourseService) UpdateLesson(courseID, chapterID, lessonID string, userID uint, req LessonReq) (*model.Lesson, error) {
	if _, err := s.OwnedChapter(courseID, chapterID, userID); err != nil {
		return nil, err
	}
	lesson, err := s.LessonRepo.FindInChapter(lessonID, chapterID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrLessonNotFound)
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		lesson.Title = *req.Title
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.VideoURL != nil {
		if *req.VideoURL != lesson.VideoURL && req.VideoMeta == nil {
			// Metadata of the previous video no longer applies.
			lesson.VideoMeta = nil
			fields["video_meta"] = nil
		}
		lesson.VideoURL = *req.VideoURL
		fields["video_url"] = *req.VideoURL
	}
	if req.VideoMeta != nil {
		lesson.VideoMeta = *req.VideoMeta
		fields["video_meta"] = *req.VideoMeta
	}
	if req.IsPublished != nil {
		if *req.IsPublished && blank(lesson.Title) {
			return nil, util.ErrPublishRequirements
		}
		lesson.IsPublished = *req.IsPublished
		fields["is_published"] = *req.IsPublished
	}

	if len(fields) == 0 {
		return lesson, nil
	}
	if err := s.LessonRepo.Update(lesson, fields); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) DeleteLesson(courseID, chapterID, lessonID string, userID uint) error {
	if _, err := s.OwnedChapter(courseID, chapterID, userID); err != nil {
		return err
	}
	if _, err := s.LessonRepo.FindInChapter(lessonID, chapterID); err != nil {
		return mapNotFound(err, util.ErrLessonNotFound)
	}
	return s.LessonRepo.Delete(lessonID)
}

func (s *CourseService) ReorderLessons(ctx context.Context, courseID, chapterID string, userID uint, list []model.PositionUpdate) error {
	if _, err := s.OwnedChapter(courseID, chapterID, userID); err != nil {
		return err
	}
	err := s.LessonRepo.Reorder(ctx, chapterID, list)
	recordReorder("lesson", len(list), err)
	return err
}
