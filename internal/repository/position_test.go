package repository

import (
	"context"
	"course_dash_backend/internal/model"
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

func seedQuestion(t *testing.T, repo *QuizRepository, quizID string, texts ...string) (*model.QuizQuestion, []*model.QuizQuestionOption) {
	t.Helper()
	q := &model.QuizQuestion{QuizID: quizID, Prompt: "q"}
	if err := repo.CreateQuestion(q); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	var opts []*model.QuizQuestionOption
	for _, text := range texts {
		o := &model.QuizQuestionOption{QuestionID: q.ID, Text: text}
		if err := repo.CreateOption(o); err != nil {
			t.Fatalf("CreateOption: %v", err)
		}
		opts = append(opts, o)
	}
	return q, opts
}

func quizPositions(t *testing.T, db *gorm.DB, questionID string) map[string]int {
	t.Helper()
	var rows []model.QuizQuestionOption
	if err := db.Where("question_id = ?", questionID).Find(&rows).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	out := map[string]int{}
	for _, r := range rows {
		out[r.ID] = r.Position
	}
	return out
}

func TestNextPositionAppends(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)

	_, opts := seedQuestion(t, repo, "quiz-1", "a", "b", "c")
	for i, o := range opts {
		if o.Position != i {
			t.Fatalf("option %d: want=%d got=%d", i, i, o.Position)
		}
	}

	q2, _ := seedQuestion(t, repo, "quiz-1")
	if q2.Position != 1 {
		t.Fatalf("second question: want=1 got=%d", q2.Position)
	}
}

func TestNextPositionAfterGap(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)

	q, opts := seedQuestion(t, repo, "quiz-1", "a")
	if err := repo.ReorderOptions(context.Background(), q.ID, []model.PositionUpdate{{ID: opts[0].ID, Position: 10}}); err != nil {
		t.Fatalf("ReorderOptions: %v", err)
	}
	o := &model.QuizQuestionOption{QuestionID: q.ID, Text: "b"}
	if err := repo.CreateOption(o); err != nil {
		t.Fatalf("CreateOption: %v", err)
	}
	if o.Position != 11 {
		t.Fatalf("position: want=11 got=%d", o.Position)
	}
}

func TestReorderOptionsWritesEveryEntry(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)
	q, opts := seedQuestion(t, repo, "quiz-1", "a", "b", "c")

	list := []model.PositionUpdate{
		{ID: opts[0].ID, Position: 2},
		{ID: opts[2].ID, Position: 0},
	}
	if err := repo.ReorderOptions(context.Background(), q.ID, list); err != nil {
		t.Fatalf("ReorderOptions: %v", err)
	}
	got := quizPositions(t, db, q.ID)
	if got[opts[0].ID] != 2 || got[opts[1].ID] != 1 || got[opts[2].ID] != 0 {
		t.Fatalf("positions: got %v", got)
	}
}

func TestReorderOptionsAllowsEqualPositions(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)
	q, opts := seedQuestion(t, repo, "quiz-1", "a", "b")

	list := []model.PositionUpdate{{ID: opts[0].ID, Position: 3}, {ID: opts[1].ID, Position: 3}}
	if err := repo.ReorderOptions(context.Background(), q.ID, list); err != nil {
		t.Fatalf("ReorderOptions: %v", err)
	}
	got := quizPositions(t, db, q.ID)
	if got[opts[0].ID] != 3 || got[opts[1].ID] != 3 {
		t.Fatalf("positions: got %v", got)
	}
}

func TestReorderOptionsRejectsForeignID(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)
	q, opts := seedQuestion(t, repo, "quiz-1", "a", "b")
	_, foreign := seedQuestion(t, repo, "quiz-2", "x")

	list := []model.PositionUpdate{
		{ID: opts[0].ID, Position: 5},
		{ID: foreign[0].ID, Position: 6},
	}
	err := repo.ReorderOptions(context.Background(), q.ID, list)
	if !errors.Is(err, util.ErrReorderTarget) {
		t.Fatalf("err: want ErrReorderTarget got %v", err)
	}

	got := quizPositions(t, db, q.ID)
	if got[opts[0].ID] != 0 || got[opts[1].ID] != 1 {
		t.Fatalf("positions changed: %v", got)
	}
	var other model.QuizQuestionOption
	if err := db.First(&other, "id = ?", foreign[0].ID).Error; err != nil {
		t.Fatalf("load foreign: %v", err)
	}
	if other.Position != 0 {
		t.Fatalf("foreign option moved to %d", other.Position)
	}
}

func TestReorderOptionsIgnoresDeletedRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewQuizRepository(db)
	q, opts := seedQuestion(t, repo, "quiz-1", "a", "b")

	if err := repo.DeleteOption(opts[1].ID); err != nil {
		t.Fatalf("DeleteOption: %v", err)
	}
	err := repo.ReorderOptions(context.Background(), q.ID, []model.PositionUpdate{{ID: opts[1].ID, Position: 0}})
	if !errors.Is(err, util.ErrReorderTarget) {
		t.Fatalf("err: want ErrReorderTarget got %v", err)
	}
}

func TestReorderChaptersScopedToCourse(t *testing.T) {
	db := openTestDB(t)
	chapters := NewChapterRepository(db)

	first := &model.Chapter{CourseID: "course-1", Title: "one"}
	second := &model.Chapter{CourseID: "course-1", Title: "two"}
	elsewhere := &model.Chapter{CourseID: "course-2", Title: "three"}
	for _, ch := range []*model.Chapter{first, second, elsewhere} {
		if err := chapters.Create(ch); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if elsewhere.Position != 0 {
		t.Fatalf("first chapter of another course: want=0 got=%d", elsewhere.Position)
	}

	ok := []model.PositionUpdate{{ID: first.ID, Position: 1}, {ID: second.ID, Position: 0}}
	if err := chapters.Reorder(context.Background(), "course-1", ok); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	bad := []model.PositionUpdate{{ID: elsewhere.ID, Position: 9}}
	if err := chapters.Reorder(context.Background(), "course-1", bad); !errors.Is(err, util.ErrReorderTarget) {
		t.Fatalf("err: want ErrReorderTarget got %v", err)
	}
}
