package model

import "gorm.io/datatypes"

// swagger:model Course
type Course struct {
	UUIDBase
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"imageUrl"`
	Price       int64     `gorm:"default:0" json:"price"`
	IsPublished bool      `gorm:"default:false" json:"isPublished"`
	Chapters    []Chapter `gorm:"foreignKey:CourseID" json:"chapters,omitempty"`
	Exams       []Exam    `gorm:"foreignKey:CourseID" json:"exams,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Chapter
type Chapter struct {
	UUIDBase
	CourseID    string   `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title       string   `gorm:"type:text;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Position    int      `gorm:"not null;default:0" json:"position"`
	IsPublished bool     `gorm:"default:false" json:"isPublished"`
	IsFree      bool     `gorm:"default:false" json:"isFree"`
	Lessons     []Lesson `gorm:"foreignKey:ChapterID" json:"lessons,omitempty"`
	Quizzes     []Quiz   `gorm:"foreignKey:ChapterID" json:"quizzes,omitempty"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	ChapterID   string         `gorm:"index;type:varchar(36);not null" json:"chapterId"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	IsPublished bool           `gorm:"default:false" json:"isPublished"`
	VideoURL    string         `gorm:"type:text" json:"videoUrl"`
	VideoMeta   datatypes.JSON `json:"videoMeta,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

func (l *Lesson) HasVideo() bool {
	return l.VideoURL != ""
}
