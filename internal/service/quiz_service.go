package service

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/util"
	"strings"
)

type QuizService struct {
	Repo    *repository.QuizRepository
	Courses *CourseService
}

func NewQuizService(repo *repository.QuizRepository, courses *CourseService) *QuizService {
	return &QuizService{Repo: repo, Courses: courses}
}

type QuestionReq struct {
	Prompt *string `json:"prompt"`
}

type OptionReq struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"isCorrect"`
}

func optionFields(req OptionReq) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.Text != nil {
		if blank(*req.Text) {
			return nil, util.ErrEmptyText
		}
		fields["text"] = strings.TrimSpace(*req.Text)
	}
	if req.IsCorrect != nil {
		fields["is_correct"] = *req.IsCorrect
	}
	return fields, nil
}

func (s *QuizService) ownedQuiz(courseID, chapterID, quizID string, userID uint) (*model.Quiz, error) {
	if _, err := s.Courses.OwnedChapter(courseID, chapterID, userID); err != nil {
		return nil, err
	}
	quiz, err := s.Repo.FindQuizInChapter(quizID, chapterID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuizNotFound)
	}
	return quiz, nil
}

func (s *QuizService) ownedQuestion(ctx context.Context, courseID, chapterID, quizID, questionID string, userID uint) (*model.QuizQuestion, error) {
	if _, err := s.ownedQuiz(courseID, chapterID, quizID, userID); err != nil {
		return nil, err
	}
	q, err := s.Repo.FindQuestionInQuiz(ctx, questionID, quizID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuestionNotFound)
	}
	return q, nil
}

func (s *QuizService) CreateQuiz(courseID, chapterID string, userID uint, title string) (*model.Quiz, error) {
	if blank(title) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.Courses.OwnedChapter(courseID, chapterID, userID); err != nil {
		return nil, err
	}
	quiz := &model.Quiz{ChapterID: chapterID, Title: strings.TrimSpace(title)}
	if err := s.Repo.CreateQuiz(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(courseID, chapterID, quizID string, userID uint) (*model.Quiz, error) {
	if _, err := s.ownedQuiz(courseID, chapterID, quizID, userID); err != nil {
		return nil, err
	}
	quiz, err := s.Repo.FindQuizTree(quizID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuizNotFound)
	}
	return quiz, nil
}

func (s *QuizService) CreateQuestion(courseID, chapterID, quizID string, userID uint, prompt string) (*model.QuizQuestion, error) {
	if blank(prompt) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.ownedQuiz(courseID, chapterID, quizID, userID); err != nil {
		return nil, err
	}
	q := &model.QuizQuestion{QuizID: quizID, Prompt: strings.TrimSpace(prompt)}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	q.Options = []model.QuizQuestionOption{}
	return q, nil
}

func (s *QuizService) GetQuestion(ctx context.Context, courseID, chapterID, quizID, questionID string, userID uint) (*model.QuizQuestion, error) {
	if _, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID); err != nil {
		return nil, err
	}
	q, err := s.Repo.FindQuestionTree(questionID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuestionNotFound)
	}
	return q, nil
}

func (s *QuizService) UpdateQuestion(ctx context.Context, courseID, chapterID, quizID, questionID string, userID uint, req QuestionReq) (*model.QuizQuestion, error) {
	q, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID)
	if err != nil {
		return nil, err
	}
	if req.Prompt == nil {
		return q, nil
	}
	if blank(*req.Prompt) {
		return nil, util.ErrEmptyText
	}
	q.Prompt = strings.TrimSpace(*req.Prompt)
	if err := s.Repo.UpdateQuestion(q, map[string]interface{}{"prompt": q.Prompt}); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) DeleteQuestion(ctx context.Context, courseID, chapterID, quizID, questionID string, userID uint) error {
	if _, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID); err != nil {
		return err
	}
	return s.Repo.DeleteQuestion(questionID)
}

func (s *QuizService) CreateOption(ctx context.Context, courseID, chapterID, quizID, questionID string, userID uint, text string) (*model.QuizQuestionOption, error) {
	if blank(text) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID); err != nil {
		return nil, err
	}
	o := &model.QuizQuestionOption{QuestionID: questionID, Text: strings.TrimSpace(text)}
	if err := s.Repo.CreateOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *QuizService) UpdateOption(ctx context.Context, courseID, chapterID, quizID, questionID, optionID string, userID uint, req OptionReq) (*model.QuizQuestionOption, error) {
	if _, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID); err != nil {
		return nil, err
	}
	o, err := s.Repo.FindOptionInQuestion(optionID, questionID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrOptionNotFound)
	}
	fields, err := optionFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return o, nil
	}
	if err := s.Repo.UpdateOption(o, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindOptionInQuestion(optionID, questionID)
}

func (s *QuizService) DeleteOption(ctx context.Context, courseID, chapterID, quizID, questionID, optionID string, userID uint) error {
	if _, err := s.ownedQuestion(ctx, courseID, chapterID, quizID, questionID, userID); err != nil {
		return err
	}
	if _, err := s.Repo.FindOptionInQuestion(optionID, questionID); err != nil {
		return mapNotFound(err, util.ErrOptionNotFound)
	}
	return s.Repo.DeleteOption(optionID)
}

func (s *QuizService) ReorderQuestions(ctx context.Context, courseID, chapterID, quizID string, userID uint, list []model.PositionUpdate) error {
	if _, err := s.ownedQuiz(courseID, chapterID, quizID, userID); err != nil {
		return err
	}
	err := s.Repo.ReorderQuestions(ctx, quizID, list)
	recordReorder("quiz_question", len(list), err)
	return err
}
