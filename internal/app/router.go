package app

import (
	"quiz_builder_backend/docs"
	"quiz_builder_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", c.quiz.ListQuizzes)
			quizzes.POST("", c.quiz.CreateQuiz)
			quizzes.GET("/:id", c.quiz.GetQuiz)
			quizzes.PUT("/:id", c.quiz.UpdateQuiz)
			quizzes.DELETE("/:id", c.quiz.DeleteQuiz)

			quizzes.POST("/:id/submit", c.result.Submit)
			quizzes.GET("/:id/results", c.result.ListByQuiz)
		}

		api.GET("/results", c.result.ListAll)
	}
}
