package repository

import (
	"context"
	"course_dash_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) CreateExam(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindExamInCourse(id, courseID string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Where("id = ? AND course_id = ?", id, courseID).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) FindExamTree(id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&exam, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) UpdateExam(exam *model.Exam, fields map[string]interface{}) error {
	return r.DB.Model(exam).Updates(fields).Error
}

func (r *ExamRepository) CreateQuestion(q *model.ExamQuestion) error {
	pos, err := nextPosition(r.DB, &model.ExamQuestion{}, "exam_id", q.ExamID)
	if err != nil {
		return err
	}
	q.Position = pos
	return r.DB.Create(q).Error
}

func (r *ExamRepository) FindQuestionInExam(ctx context.Context, id, examID string) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
	err := r.DB.WithContext(ctx).Where("id = ? AND exam_id = ?", id, examID).First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *ExamRepository) FindQuestionTree(id string) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
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

func (r *ExamRepository) UpdateQuestion(q *model.ExamQuestion, fields map[string]interface{}) error {
	return r.DB.Model(q).Updates(fields).Error
}

func (r *ExamRepository) DeleteQuestion(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.ExamQuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExamQuestion{}, "id = ?", id).Error
	})
}

func (r *ExamRepository) ReorderQuestions(ctx context.Context, examID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.ExamQuestion{}, "exam_id", examID, list)
	})
}

func (r *ExamRepository) CreateOption(o *model.ExamQuestionOption) error {
	pos, err := nextPosition(r.DB, &model.ExamQuestionOption{}, "question_id", o.QuestionID)
	if err != nil {
		return err
	}
	o.Position = pos
	return r.DB.Create(o).Error
}

func (r *ExamRepository) FindOptionInQuestion(id, questionID string) (*model.ExamQuestionOption, error) {
	var o model.ExamQuestionOption
	err := r.DB.Where("id = ? AND question_id = ?", id, questionID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ExamRepository) UpdateOption(o *model.ExamQuestionOption, fields map[string]interface{}) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if correct, ok := fields["is_correct"].(bool); ok && correct {
			if err := tx.Model(&model.ExamQuestionOption{}).
				Where("question_id = ? AND id <> ?", o.QuestionID, o.ID).
				Update("is_correct", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(o).Updates(fields).Error
	})
}

func (r *ExamRepository) DeleteOption(id string) error {
	return r.DB.Delete(&model.ExamQuestionOption{}, "id = ?", id).Error
}

func (r *ExamRepository) ReorderOptions(ctx context.Context, questionID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.ExamQuestionOption{}, "question_id", questionID, list)
	})
}
