package repository

import (
	"context"
	"course_dash_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

// Create appends the chapter after the course's last one.
func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	pos, err := nextPosition(r.DB, &model.Chapter{}, "course_id", chapter.CourseID)
	if err != nil {
		return err
	}
	chapter.Position = pos
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) FindInCourse(id, courseID string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.Where("id = ? AND course_id = ?", id, courseID).First(&chapter).Error
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) Update(chapter *model.Chapter, fields map[string]interface{}) error {
	return r.DB.Model(chapter).Updates(fields).Error
}

func (r *ChapterRepository) CountLessons(chapterID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("chapter_id = ?", chapterID).Count(&count).Error
	return count, err
}

func (r *ChapterRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Chapter{}, "id = ?", id).Error
	})
}

func (r *ChapterRepository) Reorder(ctx context.Context, courseID string, list []model.PositionUpdate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return updatePositions(tx, &model.Chapter{}, "course_id", courseID, list)
	})
}
