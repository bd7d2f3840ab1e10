package service

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/monitoring"
	"errors"

	"gorm.io/gorm"
)

// ReorderService persists bulk option reorders for quiz and exam questions.
// The caller must be authenticated; the only ownership rule is that the
// question belongs to the assessment named in the path.
type ReorderService struct {
	Quizzes *repository.QuizRepository
	Exams   *repository.ExamRepository
}

func NewReorderService(quizzes *repository.QuizRepository, exams *repository.ExamRepository) *ReorderService {
	return &ReorderService{Quizzes: quizzes, Exams: exams}
}

func recordReorder(target string, n int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	monitoring.ReorderItems.WithLabelValues(target, outcome).Add(float64(n))
}

// ReorderQuizOptions returns util.ErrQuestionNotFound when questionID is not a
// question of quizID, before any write happens.
func (s *ReorderService) ReorderQuizOptions(ctx context.Context, quizID, questionID string, list []model.PositionUpdate) error {
	if _, err := s.Quizzes.FindQuestionInQuiz(ctx, questionID, quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	err := s.Quizzes.ReorderOptions(ctx, questionID, list)
	recordReorder("quiz_option", len(list), err)
	return err
}

func (s *ReorderService) ReorderExamOptions(ctx context.Context, examID, questionID string, list []model.PositionUpdate) error {
	if _, err := s.Exams.FindQuestionInExam(ctx, questionID, examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	err := s.Exams.ReorderOptions(ctx, questionID, list)
	recordReorder("exam_option", len(list), err)
	return err
}
