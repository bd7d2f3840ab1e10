package service

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/util"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testServices struct {
	db      *gorm.DB
	courses *CourseService
	exams   *ExamService
	quizzes *QuizService
	reorder *ReorderService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := openTestDB(t)
	courses := NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewChapterRepository(db),
		repository.NewLessonRepository(db),
	)
	quizRepo := repository.NewQuizRepository(db)
	examRepo := repository.NewExamRepository(db)
	return &testServices{
		db:      db,
		courses: courses,
		exams:   NewExamService(examRepo, courses),
		quizzes: NewQuizService(quizRepo, courses),
		reorder: NewReorderService(quizRepo, examRepo),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

const owner uint = 1

// publishableCourse has every course field filled in and a single chapter
// with one lesson.
func (s *testServices) publishableCourse(t *testing.T) (*model.Course, *model.Chapter) {
	t.Helper()
	course, err := s.courses.CreateCourse(owner, "Go")
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if _, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{
		Description: strPtr("Learn Go"),
		ImageURL:    strPtr("/uploads/courseImage/cover.jpg"),
	}); err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	chapter, err := s.courses.CreateChapter(course.ID, owner, "Basics")
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}
	if _, err := s.courses.CreateLesson(course.ID, chapter.ID, owner, "Intro"); err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	return course, chapter
}

func TestPublishCourseRequiresPublishedChapter(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)

	_, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)})
	if !errors.Is(err, util.ErrPublishRequirements) {
		t.Fatalf("without published chapter: want ErrPublishRequirements got %v", err)
	}

	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish chapter: %v", err)
	}
	got, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)})
	if err != nil {
		t.Fatalf("publish course: %v", err)
	}
	if !got.IsPublished {
		t.Fatalf("isPublished: want=true got=false")
	}
}

func TestPublishCourseRequiresImage(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish chapter: %v", err)
	}
	if _, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{ImageURL: strPtr("")}); err != nil {
		t.Fatalf("clear image: %v", err)
	}

	_, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)})
	if !errors.Is(err, util.ErrPublishRequirements) {
		t.Fatalf("want ErrPublishRequirements got %v", err)
	}
}

func TestPublishChapterRequiresLesson(t *testing.T) {
	s := newTestServices(t)
	course, _ := s.publishableCourse(t)
	empty, err := s.courses.CreateChapter(course.ID, owner, "Empty")
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}

	_, err = s.courses.UpdateChapter(course.ID, empty.ID, owner, ChapterReq{IsPublished: boolPtr(true)})
	if !errors.Is(err, util.ErrPublishRequirements) {
		t.Fatalf("want ErrPublishRequirements got %v", err)
	}
}

func TestUnpublishLastChapterUnpublishesCourse(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish chapter: %v", err)
	}
	if _, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish course: %v", err)
	}

	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(false)}); err != nil {
		t.Fatalf("unpublish chapter: %v", err)
	}

	var stored model.Course
	if err := s.db.First(&stored, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	if stored.IsPublished {
		t.Fatalf("course still published after its last chapter was unpublished")
	}
}

func TestDeleteLastChapterUnpublishesCourse(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish chapter: %v", err)
	}
	if _, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish course: %v", err)
	}

	if err := s.courses.DeleteChapter(course.ID, chapter.ID, owner); err != nil {
		t.Fatalf("DeleteChapter: %v", err)
	}
	var stored model.Course
	if err := s.db.First(&stored, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	if stored.IsPublished {
		t.Fatalf("course still published after its last chapter was deleted")
	}
}

func TestCourseOwnership(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	const stranger uint = 2

	if _, err := s.courses.UpdateCourse(course.ID, stranger, CourseReq{Title: strPtr("x")}); !errors.Is(err, util.ErrUnauthorized) {
		t.Fatalf("UpdateCourse: want ErrUnauthorized got %v", err)
	}
	if _, err := s.courses.CreateLesson(course.ID, chapter.ID, stranger, "x"); !errors.Is(err, util.ErrUnauthorized) {
		t.Fatalf("CreateLesson: want ErrUnauthorized got %v", err)
	}
	err := s.courses.ReorderChapters(context.Background(), course.ID, stranger, []model.PositionUpdate{{ID: chapter.ID, Position: 3}})
	if !errors.Is(err, util.ErrUnauthorized) {
		t.Fatalf("ReorderChapters: want ErrUnauthorized got %v", err)
	}
	if _, err := s.courses.GetCourse(course.ID, stranger); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("GetCourse of draft: want ErrCourseNotFound got %v", err)
	}
}

func TestGetLessonVisibility(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	const learner uint = 2

	lesson, err := s.courses.CreateLesson(course.ID, chapter.ID, owner, "Free preview")
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if _, err := s.courses.GetLesson(course.ID, chapter.ID, lesson.ID, owner); err != nil {
		t.Fatalf("owner reads draft: %v", err)
	}
	if _, err := s.courses.GetLesson(course.ID, chapter.ID, lesson.ID, learner); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("learner reads draft: want ErrLessonNotFound got %v", err)
	}

	if _, err := s.courses.UpdateLesson(course.ID, chapter.ID, lesson.ID, owner, LessonReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish lesson: %v", err)
	}
	if _, err := s.courses.UpdateChapter(course.ID, chapter.ID, owner, ChapterReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish chapter: %v", err)
	}
	if _, err := s.courses.UpdateCourse(course.ID, owner, CourseReq{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("publish course: %v", err)
	}
	if _, err := s.courses.GetLesson(course.ID, chapter.ID, lesson.ID, learner); err != nil {
		t.Fatalf("learner reads published lesson: %v", err)
	}
}

func TestUpdateLessonVideoClearsStaleMeta(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	lesson, err := s.courses.CreateLesson(course.ID, chapter.ID, owner, "Video")
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}

	got, err := s.courses.UpdateLesson(course.ID, chapter.ID, lesson.ID, owner, LessonReq{VideoURL: strPtr("/uploads/v1.mp4")})
	if err != nil {
		t.Fatalf("UpdateLesson: %v", err)
	}
	if got.VideoURL != "/uploads/v1.mp4" {
		t.Fatalf("videoUrl: want=%q got=%q", "/uploads/v1.mp4", got.VideoURL)
	}
	if len(got.VideoMeta) != 0 {
		t.Fatalf("videoMeta: want empty got %s", got.VideoMeta)
	}
}

func TestReorderServiceQuestionOutsideAssessment(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)

	quiz, err := s.quizzes.CreateQuiz(course.ID, chapter.ID, owner, "Check")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	q, err := s.quizzes.CreateQuestion(course.ID, chapter.ID, quiz.ID, owner, "?")
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	err = s.reorder.ReorderQuizOptions(context.Background(), "other-quiz", q.ID, nil)
	if !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("want ErrQuestionNotFound got %v", err)
	}
	if err := s.reorder.ReorderQuizOptions(context.Background(), quiz.ID, q.ID, nil); err != nil {
		t.Fatalf("empty list: %v", err)
	}
}

func TestReorderExamQuestions(t *testing.T) {
	s := newTestServices(t)
	course, _ := s.publishableCourse(t)
	exam, err := s.exams.CreateExam(course.ID, owner, "Final")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	first, err := s.exams.CreateQuestion(course.ID, exam.ID, owner, "one")
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	second, err := s.exams.CreateQuestion(course.ID, exam.ID, owner, "two")
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	list := []model.PositionUpdate{{ID: first.ID, Position: 1}, {ID: second.ID, Position: 0}}
	if err := s.exams.ReorderQuestions(context.Background(), course.ID, exam.ID, owner, list); err != nil {
		t.Fatalf("ReorderQuestions: %v", err)
	}
	tree, err := s.exams.GetExam(course.ID, exam.ID, owner)
	if err != nil {
		t.Fatalf("GetExam: %v", err)
	}
	if len(tree.Questions) != 2 || tree.Questions[0].ID != second.ID {
		t.Fatalf("order: want second first, got %+v", tree.Questions)
	}
}

func TestSingleCorrectOption(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course, _ := s.publishableCourse(t)
	exam, err := s.exams.CreateExam(course.ID, owner, "Final")
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	q, err := s.exams.CreateQuestion(course.ID, exam.ID, owner, "pick")
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	a, _ := s.exams.CreateOption(ctx, course.ID, exam.ID, q.ID, owner, "a")
	b, _ := s.exams.CreateOption(ctx, course.ID, exam.ID, q.ID, owner, "b")

	if _, err := s.exams.UpdateOption(ctx, course.ID, exam.ID, q.ID, a.ID, owner, OptionReq{IsCorrect: boolPtr(true)}); err != nil {
		t.Fatalf("mark a: %v", err)
	}
	if _, err := s.exams.UpdateOption(ctx, course.ID, exam.ID, q.ID, b.ID, owner, OptionReq{IsCorrect: boolPtr(true)}); err != nil {
		t.Fatalf("mark b: %v", err)
	}

	tree, err := s.exams.GetQuestion(ctx, course.ID, exam.ID, q.ID, owner)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	correct := 0
	for _, o := range tree.Options {
		if o.IsCorrect {
			correct++
			if o.ID != b.ID {
				t.Fatalf("correct option: want=%s got=%s", b.ID, o.ID)
			}
		}
	}
	if correct != 1 {
		t.Fatalf("correct options: want=1 got=%d", correct)
	}
}

func TestOptionTextRequired(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course, _ := s.publishableCourse(t)
	exam, _ := s.exams.CreateExam(course.ID, owner, "Final")
	q, _ := s.exams.CreateQuestion(course.ID, exam.ID, owner, "pick")
	a, _ := s.exams.CreateOption(ctx, course.ID, exam.ID, q.ID, owner, "a")

	_, err := s.exams.UpdateOption(ctx, course.ID, exam.ID, q.ID, a.ID, owner, OptionReq{Text: strPtr("   ")})
	if !errors.Is(err, util.ErrEmptyText) {
		t.Fatalf("want ErrEmptyText got %v", err)
	}
}

func TestCreateRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	exam, _ := s.exams.CreateExam(course.ID, owner, "Final")
	q, _ := s.exams.CreateQuestion(course.ID, exam.ID, owner, "pick")
	quiz, _ := s.quizzes.CreateQuiz(course.ID, chapter.ID, owner, "Check")
	qq, _ := s.quizzes.CreateQuestion(course.ID, chapter.ID, quiz.ID, owner, "?")

	cases := map[string]func() error{
		"course": func() error { _, err := s.courses.CreateCourse(owner, "  "); return err },
		"chapter": func() error {
			_, err := s.courses.CreateChapter(course.ID, owner, "\t")
			return err
		},
		"lesson": func() error {
			_, err := s.courses.CreateLesson(course.ID, chapter.ID, owner, " ")
			return err
		},
		"exam": func() error { _, err := s.exams.CreateExam(course.ID, owner, ""); return err },
		"exam question": func() error {
			_, err := s.exams.CreateQuestion(course.ID, exam.ID, owner, "  ")
			return err
		},
		"exam option": func() error {
			_, err := s.exams.CreateOption(ctx, course.ID, exam.ID, q.ID, owner, "   ")
			return err
		},
		"quiz": func() error { _, err := s.quizzes.CreateQuiz(course.ID, chapter.ID, owner, " "); return err },
		"quiz question": func() error {
			_, err := s.quizzes.CreateQuestion(course.ID, chapter.ID, quiz.ID, owner, "")
			return err
		},
		"quiz option": func() error {
			_, err := s.quizzes.CreateOption(ctx, course.ID, chapter.ID, quiz.ID, qq.ID, owner, "\n")
			return err
		},
	}
	for name, create := range cases {
		t.Run(name, func(t *testing.T) {
			if err := create(); !errors.Is(err, util.ErrEmptyText) {
				t.Fatalf("want ErrEmptyText got %v", err)
			}
		})
	}

	var empty int64
	s.db.Model(&model.ExamQuestionOption{}).Where("text = ?", "").Count(&empty)
	if empty != 0 {
		t.Fatalf("blank options stored: %d", empty)
	}
}

func TestQuestionLookupUsesCallerContext(t *testing.T) {
	s := newTestServices(t)
	course, chapter := s.publishableCourse(t)
	exam, _ := s.exams.CreateExam(course.ID, owner, "Final")
	q, _ := s.exams.CreateQuestion(course.ID, exam.ID, owner, "pick")
	quiz, _ := s.quizzes.CreateQuiz(course.ID, chapter.ID, owner, "Check")
	qq, _ := s.quizzes.CreateQuestion(course.ID, chapter.ID, quiz.ID, owner, "?")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.exams.GetQuestion(ctx, course.ID, exam.ID, q.ID, owner); !errors.Is(err, context.Canceled) {
		t.Fatalf("exam question: want context.Canceled got %v", err)
	}
	if _, err := s.quizzes.CreateOption(ctx, course.ID, chapter.ID, quiz.ID, qq.ID, owner, "yes"); !errors.Is(err, context.Canceled) {
		t.Fatalf("quiz option: want context.Canceled got %v", err)
	}
}
