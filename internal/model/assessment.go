package model

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	ChapterID string         `gorm:"index;type:varchar(36);not null" json:"chapterId"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	UUIDBase
	QuizID   string               `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Prompt   string               `gorm:"type:text;not null" json:"prompt"`
	Position int                  `gorm:"not null;default:0" json:"position"`
	Options  []QuizQuestionOption `gorm:"foreignKey:QuestionID" json:"options"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// swagger:model QuizQuestionOption
type QuizQuestionOption struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Position   int    `gorm:"not null;default:0" json:"position"`
}

func (QuizQuestionOption) TableName() string {
	return "quiz_question_options"
}

// swagger:model Exam
type Exam struct {
	UUIDBase
	CourseID    string         `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	IsPublished bool           `gorm:"default:false" json:"isPublished"`
	Questions   []ExamQuestion `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// swagger:model ExamQuestion
type ExamQuestion struct {
	UUIDBase
	ExamID   string               `gorm:"index;type:varchar(36);not null" json:"examId"`
	Prompt   string               `gorm:"type:text;not null" json:"prompt"`
	Position int                  `gorm:"not null;default:0" json:"position"`
	Options  []ExamQuestionOption `gorm:"foreignKey:QuestionID" json:"options"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

// swagger:model ExamQuestionOption
type ExamQuestionOption struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Position   int    `gorm:"not null;default:0" json:"position"`
}

func (ExamQuestionOption) TableName() string {
	return "exam_question_options"
}

// AllModels lists every table managed by AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Chapter{},
		&Lesson{},
		&Quiz{},
		&QuizQuestion{},
		&QuizQuestionOption{},
		&Exam{},
		&ExamQuestion{},
		&ExamQuestionOption{},
	}
}
