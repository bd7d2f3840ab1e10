package util

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrCourseNotFound      = errors.New("course not found")
	ErrChapterNotFound     = errors.New("chapter not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrExamNotFound        = errors.New("exam not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrOptionNotFound      = errors.New("option not found")
	ErrPublishRequirements = errors.New("missing required fields")
	ErrEmptyText           = errors.New("text is required")
	ErrInvalidUpload       = errors.New("invalid upload")
	ErrUploadTooLarge      = errors.New("upload too large")
	ErrUnknownUploadTarget = errors.New("unknown upload endpoint")
)

// ErrReorderTarget means a reorder entry named a row outside the parent being reordered.
var ErrReorderTarget = errors.New("reorder target not found")
