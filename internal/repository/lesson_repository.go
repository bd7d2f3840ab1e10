package repository

import (
	"context"
	"course_dash_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	pos, err := nextPosition(r.DB, &model.Lesson{}, "chapter_id", lesson.ChapterID)
	if err != nil {
		return err
	}
	lesson.Position = pos
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindInChapter(id, chapterID string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ? AND chapter_id = ?", id, chapterID).First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) Update(lesson *model.Lesson, fields map[string]interface{}) error {
	return r.DB.Model(lesson).Updates(fields).Error
}

func (r *LessonRepository) Delete(id string) error {
	return r.DB.Delete(&model.Lesson{}, "id = ?", id).Error
}

func (r *LessonRepository) Reorder(ctx context.Context, chapterID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.Lesson{}, "chapter_id", chapterID, list)
	})
}
