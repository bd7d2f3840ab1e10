// Seeds a demo author and course tree from a YAML file so the dashboard has
// something to reorder on a fresh database.
//
// Usage: go run scripts/seed_course.go [-file scripts/demo_course.yaml]

package main

import (
	"context"
	"course_dash_backend/internal/config"
	"course_dash_backend/internal/model"
	"course_dash_backend/internal/repository"
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"
	"course_dash_backend/pkg/database"
	"course_dash_backend/pkg/logger"
	"errors"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Author struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"author"`
	Course struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Chapters    []struct {
			Title   string   `yaml:"title"`
			Lessons []string `yaml:"lessons"`
		} `yaml:"chapters"`
		Exam struct {
			Title     string `yaml:"title"`
			Questions []struct {
				Prompt  string   `yaml:"prompt"`
				Options []string `yaml:"options"`
				Answer  int      `yaml:"answer"`
			} `yaml:"questions"`
		} `yaml:"exam"`
	} `yaml:"course"`
}

func main() {
	file := flag.String("file", "scripts/demo_course.yaml", "seed definition")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read seed file: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ForceMigrate = true
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	users := repository.NewUserRepository(db)
	auth := service.NewAuthService(users, nil, cfg)
	courses := service.NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewChapterRepository(db),
		repository.NewLessonRepository(db),
	)
	exams := service.NewExamService(repository.NewExamRepository(db), courses)
	ctx := context.Background()

	author := &model.User{
		Name:     seed.Author.Name,
		Email:    seed.Author.Email,
		Password: seed.Author.Password,
		Role:     model.Teacher,
	}
	switch err := auth.Register(author); {
	case err == nil:
	case errors.Is(err, util.ErrEmailRegistered):
		existing, findErr := users.FindByEmail(seed.Author.Email)
		if findErr != nil {
			log.Fatalf("load author: %v", findErr)
		}
		author = existing
	default:
		log.Fatalf("register author: %v", err)
	}

	course, err := courses.CreateCourse(author.ID, seed.Course.Title)
	if err != nil {
		log.Fatalf("create course: %v", err)
	}
	desc := seed.Course.Description
	if _, err := courses.UpdateCourse(course.ID, author.ID, service.CourseReq{Description: &desc}); err != nil {
		log.Fatalf("update course: %v", err)
	}

	for _, ch := range seed.Course.Chapters {
		chapter, err := courses.CreateChapter(course.ID, author.ID, ch.Title)
		if err != nil {
			log.Fatalf("create chapter %q: %v", ch.Title, err)
		}
		for _, title := range ch.Lessons {
			if _, err := courses.CreateLesson(course.ID, chapter.ID, author.ID, title); err != nil {
				log.Fatalf("create lesson %q: %v", title, err)
			}
		}
	}

	if seed.Course.Exam.Title != "" {
		exam, err := exams.CreateExam(course.ID, author.ID, seed.Course.Exam.Title)
		if err != nil {
			log.Fatalf("create exam: %v", err)
		}
		for _, q := range seed.Course.Exam.Questions {
			question, err := exams.CreateQuestion(course.ID, exam.ID, author.ID, q.Prompt)
			if err != nil {
				log.Fatalf("create question: %v", err)
			}
			for i, text := range q.Options {
				option, err := exams.CreateOption(ctx, course.ID, exam.ID, question.ID, author.ID, text)
				if err != nil {
					log.Fatalf("create option: %v", err)
				}
				if i == q.Answer {
					correct := true
					if _, err := exams.UpdateOption(ctx, course.ID, exam.ID, question.ID, option.ID, author.ID, service.OptionReq{IsCorrect: &correct}); err != nil {
						log.Fatalf("mark answer: %v", err)
					}
				}
			}
		}
	}

	logger.Log.Info("seeded demo course", zap.String("courseId", course.ID), zap.String("author", author.Email))
}
