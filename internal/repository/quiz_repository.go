package repository

import (
	"context"
	"course_dash_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateQuiz(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindQuizInChapter(id, chapterID string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ? AND chapter_id = ?", id, chapterID).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindQuizTree loads a quiz with questions and options in display order.
func (r *QuizRepository) FindQuizTree(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) CreateQuestion(q *model.QuizQuestion) error {
	pos, err := nextPosition(r.DB, &model.QuizQuestion{}, "quiz_id", q.QuizID)
	if err != nil {
		return err
	}
	q.Position = pos
	return r.DB.Create(q).Error
}

// FindQuestionInQuiz only matches a question that belongs to quizID.
func (r *QuizRepository) FindQuestionInQuiz(ctx context.Context, id, quizID string) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.WithContext(ctx).Where("id = ? AND quiz_id = ?", id, quizID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) FindQuestionTree(id string) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) UpdateQuestion(q *model.QuizQuestion, fields map[string]interface{}) error {
	return r.DB.Model(q).Updates(fields).Error
}

func (r *QuizRepository) DeleteQuestion(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.QuizQuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizQuestion{}, "id = ?", id).Error
	})
}

func (r *QuizRepository) ReorderQuestions(ctx context.Context, quizID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.QuizQuestion{}, "quiz_id", quizID, list)
	})
}

func (r *QuizRepository) CreateOption(o *model.QuizQuestionOption) error {
	pos, err := nextPosition(r.DB, &model.QuizQuestionOption{}, "question_id", o.QuestionID)
	if err != nil {
		return err
	}
	o.Position = pos
	return r.DB.Create(o).Error
}

func (r *QuizRepository) FindOptionInQuestion(id, questionID string) (*model.QuizQuestionOption, error) {
	var o model.QuizQuestionOption
	err := r.DB.Where("id = ? AND question_id = ?", id, questionID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOption applies fields; when isCorrect becomes true every sibling
// option is cleared in the same transaction.
func (r *QuizRepository) UpdateOption(o *model.QuizQuestionOption, fields map[string]interface{}) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if correct, ok := fields["is_correct"].(bool); ok && correct {
			if err := tx.Model(&model.QuizQuestionOption{}).
				Where("question_id = ? AND id <> ?", o.QuestionID, o.ID).
				Update("is_correct", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(o).Updates(fields).Error
	})
}

func (r *QuizRepository) DeleteOption(id string) error {
	return r.DB.Delete(&model.QuizQuestionOption{}, "id = ?", id).Error
}

// ReorderOptions applies the whole list atomically.
func (r *QuizRepository) ReorderOptions(ctx context.Context, questionID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.QuizQuestionOption{}, "question_id", questionID, list)
	})
}
