package repository

import (
	"course_dash_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindOwned looks a course up by id and owner in one query.
func (r *CourseRepository) FindOwned(id string, userID uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindTree loads a course with chapters, lessons, quizzes and exams in display
// order. With publishedOnly, drafts are left out at every level.
func (r *CourseRepository) FindTree(id string, publishedOnly bool) (*model.Course, error) {
	byPosition := func(db *gorm.DB) *gorm.DB {
		if publishedOnly {
			db = db.Where("is_published = ?", true)
		}
		return db.Order("position asc")
	}

	var course model.Course
	err := r.DB.
		Preload("Chapters", byPosition).
		Preload("Chapters.Lessons", byPosition).
		Preload("Chapters.Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Exams", func(db *gorm.DB) *gorm.DB {
			if publishedOnly {
				db = db.Where("is_published = ?", true)
			}
			return db.Order("created_at asc")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) ListByUser(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListPublished(page, limit int) ([]model.Course, int64, error) {
	var total int64
	query := r.DB.Model(&model.Course{}).Where("is_published = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(course *model.Course, fields map[string]interface{}) error {
	return r.DB.Model(course).Updates(fields).Error
}

func (r *CourseRepository) CountPublishedChapters(courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Chapter{}).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Count(&count).Error
	return count, err
}

// Delete removes a course together with its chapters, lessons and exams.
func (r *CourseRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []string
		if err := tx.Model(&model.Chapter{}).Where("course_id = ?", id).Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			if err := tx.Where("chapter_id IN ?", chapterIDs).Delete(&model.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&model.Chapter{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Exam{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, "id = ?", id).Error
	})
}
