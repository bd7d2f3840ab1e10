package app

import (
	"course_dash_backend/docs"
	"course_dash_backend/internal/middleware"
	"course_dash_backend/internal/model"
	"course_dash_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, s *services) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public
	a.registerPublicRoutes(router, c)

	// 2. signed in
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.auth), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/courses", c.course.ListPublished)
		authGroup.POST("/uploads/:endpoint", c.upload.Upload)

		a.registerCourseRoutes(authGroup, c)
		a.registerQuizRoutes(authGroup, c)
		a.registerExamRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/teacher/courses", c.course.ListMine)
	rg.POST("/courses", middleware.RoleMiddleware(model.Teacher), c.course.CreateCourse)

	course := rg.Group("/courses/:courseId")
	{
		course.GET("", c.course.GetCourse)
		course.PATCH("", c.course.UpdateCourse)
		course.DELETE("", c.course.DeleteCourse)

		course.POST("/chapters", c.course.CreateChapter)
		course.PUT("/chapters/reorder", c.course.ReorderChapters)
		course.PATCH("/chapters/:chapterId", c.course.UpdateChapter)
		course.DELETE("/chapters/:chapterId", c.course.DeleteChapter)

		course.POST("/chapters/:chapterId/lessons", c.course.CreateLesson)
		course.PUT("/chapters/:chapterId/lessons/reorder", c.course.ReorderLessons)
		course.GET("/chapters/:chapterId/lessons/:lessonId", c.course.GetLesson)
		course.PATCH("/chapters/:chapterId/lessons/:lessonId", c.course.UpdateLesson)
		course.DELETE("/chapters/:chapterId/lessons/:lessonId", c.course.DeleteLesson)
	}
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	quiz := rg.Group("/courses/:courseId/chapters/:chapterId/quiz")
	{
		quiz.POST("", c.quiz.CreateQuiz)
		quiz.GET("/:quizId", c.quiz.GetQuiz)

		quiz.POST("/:quizId/questions", c.quiz.CreateQuestion)
		quiz.PUT("/:quizId/questions/reorder", c.quiz.ReorderQuestions)
		quiz.GET("/:quizId/questions/:questionId", c.quiz.GetQuestion)
		quiz.PATCH("/:quizId/questions/:questionId", c.quiz.UpdateQuestion)
		quiz.DELETE("/:quizId/questions/:questionId", c.quiz.DeleteQuestion)

		quiz.POST("/:quizId/questions/:questionId/options", c.quiz.CreateOption)
		quiz.PUT("/:quizId/questions/:questionId/options/reorder", c.reorder.ReorderQuizOptions)
		quiz.PATCH("/:quizId/questions/:questionId/options/:optionId", c.quiz.UpdateOption)
		quiz.DELETE("/:quizId/questions/:questionId/options/:optionId", c.quiz.DeleteOption)
	}
}

func (a *App) registerExamRoutes(rg *gin.RouterGroup, c *controllers) {
	exam := rg.Group("/courses/:courseId/exam")
	{
		exam.POST("", c.exam.CreateExam)
		exam.GET("/:examId", c.exam.GetExam)
		exam.PATCH("/:examId", c.exam.UpdateExam)

		exam.POST("/:examId/questions", c.exam.CreateQuestion)
		exam.PUT("/:examId/questions/reorder", c.exam.ReorderQuestions)
		exam.GET("/:examId/questions/:questionId", c.exam.GetQuestion)
		exam.PATCH("/:examId/questions/:questionId", c.exam.UpdateQuestion)
		exam.DELETE("/:examId/questions/:questionId", c.exam.DeleteQuestion)

		exam.POST("/:examId/questions/:questionId/options", c.exam.CreateOption)
		exam.PUT("/:examId/questions/:questionId/options/reorder", c.reorder.ReorderExamOptions)
		exam.PATCH("/:examId/questions/:questionId/options/:optionId", c.exam.UpdateOption)
		exam.DELETE("/:examId/questions/:questionId/options/:optionId", c.exam.DeleteOption)
	}
}
