package service

import (
	"context"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/util"
	"strings"
)

type ExamService struct {
	Repo    *repository.ExamRepository
	Courses *CourseService
}

func NewExamService(repo *repository.ExamRepository, courses *CourseService) *ExamService {
	return &ExamService{Repo: repo, Courses: courses}
}

type ExamReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"isPublished"`
}

func (s *ExamService) ownedExam(courseID, examID string, userID uint) (*model.Exam, error) {
	if _, err := s.Courses.OwnedCourse(courseID, userID); err != nil {
		return nil, err
	}
	exam, err := s.Repo.FindExamInCourse(examID, courseID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrExamNotFound)
	}
	return exam, nil
}

func (s *ExamService) ownedQuestion(ctx context.Context, courseID, examID, questionID string, userID uint) (*model.ExamQuestion, error) {
	if _, err := s.ownedExam(courseID, examID, userID); err != nil {
		return nil, err
	}
	q, err := s.Repo.FindQuestionInExam(ctx, questionID, examID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuestionNotFound)
	}
	return q, nil
}

func (s *ExamService) CreateExam(courseID string, userID uint, title string) (*model.Exam, error) {
	if blank(title) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.Courses.OwnedCourse(courseID, userID); err != nil {
		return nil, err
	}
	exam := &model.Exam{CourseID: courseID, Title: strings.TrimSpace(title)}
	if err := s.Repo.CreateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) GetExam(courseID, examID string, userID uint) (*model.Exam, error) {
	if _, err := s.ownedExam(courseID, examID, userID); err != nil {
		return nil, err
	}
	exam, err := s.Repo.FindExamTree(examID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrExamNotFound)
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(courseID, examID string, userID uint, req ExamReq) (*model.Exam, error) {
	exam, err := s.ownedExam(courseID, examID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		exam.Title = *req.Title
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.IsPublished != nil {
		if *req.IsPublished && blank(exam.Title) {
			return nil, util.ErrPublishRequirements
		}
		exam.IsPublished = *req.IsPublished
		fields["is_published"] = *req.IsPublished
	}
	if len(fields) == 0 {
		return exam, nil
	}
	if err := s.Repo.UpdateExam(exam, fields); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) CreateQuestion(courseID, examID string, userID uint, prompt string) (*model.ExamQuestion, error) {
	if blank(prompt) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.ownedExam(courseID, examID, userID); err != nil {
		return nil, err
	}
	q := &model.ExamQuestion{ExamID: examID, Prompt: strings.TrimSpace(prompt)}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	q.Options = []model.ExamQuestionOption{}
	return q, nil
}

// GetQuestion backs the option form: the question with its options in order.
func (s *ExamService) GetQuestion(ctx context.Context, courseID, examID, questionID string, userID uint) (*model.ExamQuestion, error) {
	if _, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID); err != nil {
		return nil, err
	}
	q, err := s.Repo.FindQuestionTree(questionID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrQuestionNotFound)
	}
	return q, nil
}

func (s *ExamService) UpdateQuestion(ctx context.Context, courseID, examID, questionID string, userID uint, req QuestionReq) (*model.ExamQuestion, error) {
	q, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID)
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

func (s *ExamService) DeleteQuestion(ctx context.Context, courseID, examID, questionID string, userID uint) error {
	if _, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID); err != nil {
		return err
	}
	return s.Repo.DeleteQuestion(questionID)
}

func (s *ExamService) CreateOption(ctx context.Context, courseID, examID, questionID string, userID uint, text string) (*model.ExamQuestionOption, error) {
	if blank(text) {
		return nil, util.ErrEmptyText
	}
	if _, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID); err != nil {
		return nil, err
	}
	o := &model.ExamQuestionOption{QuestionID: questionID, Text: strings.TrimSpace(text)}
	if err := s.Repo.CreateOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *ExamService) UpdateOption(ctx context.Context, courseID, examID, questionID, optionID string, userID uint, req OptionReq) (*model.ExamQuestionOption, error) {
	if _, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID); err != nil {
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

func (s *ExamService) DeleteOption(ctx context.Context, courseID, examID, questionID, optionID string, userID uint) error {
	if _, err := s.ownedQuestion(ctx, courseID, examID, questionID, userID); err != nil {
		return err
	}
	if _, err := s.Repo.FindOptionInQuestion(optionID, questionID); err != nil {
		return mapNotFound(err, util.ErrOptionNotFound)
	}
	return s.Repo.DeleteOption(optionID)
}

func (s *ExamService) ReorderQuestions(ctx context.Context, courseID, examID string, userID uint, list []model.PositionUpdate) error {
	if _, err := s.ownedExam(courseID, examID, userID); err != nil {
		return err
	}
	err := s.Repo.ReorderQuestions(ctx, examID, list)
	recordReorder("exam_question", len(list), err)
	return err
}
