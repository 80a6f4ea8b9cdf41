package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaquest/handlers"
	"triviaquest/middleware"
	"triviaquest/services"
)

// SetupRoutes wires the API. Quiz play and the highscore/topic listings are
// public; everything that modifies content requires a bearer token.
func SetupRoutes(
	router *gin.Engine,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	topicHandler *handlers.TopicHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
	highscoreHandler *handlers.HighscoreHandler,
) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Public game endpoints.
		api.GET("/topics", topicHandler.GetAllTopics)
		api.GET("/questions/quiz-question", questionHandler.GetQuizQuestion)
		api.POST("/questions/:id/correct", questionHandler.CheckAnswer)
		api.GET("/questions/:id/joker", questionHandler.UseJoker)
		api.GET("/highscores", highscoreHandler.GetAllHighscores)

		protected := api.Group("/")
		protected.Use(middleware.Auth(authService))
		{
			topics := protected.Group("/topics")
			{
				topics.POST("", topicHandler.CreateTopic)
				topics.GET("/:id", topicHandler.GetTopicByID)
				topics.PATCH("/:id", topicHandler.UpdateTopic)
				topics.DELETE("/:id", topicHandler.DeleteTopic)
			}

			questions := protected.Group("/questions")
			{
				questions.GET("", questionHandler.GetAllQuestions)
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("/:id", questionHandler.GetQuestionByID)
				questions.PATCH("/:id", questionHandler.UpdateQuestion)
				questions.DELETE("/:id", questionHandler.DeleteQuestion)
			}

			answers := protected.Group("/answers")
			{
				answers.GET("", answerHandler.GetAllAnswers)
				answers.POST("", answerHandler.CreateAnswer)
				answers.GET("/:id", answerHandler.GetAnswerByID)
				answers.PATCH("/:id", answerHandler.UpdateAnswer)
				answers.DELETE("/:id", answerHandler.DeleteAnswer)
			}

			highscores := protected.Group("/highscores")
			{
				highscores.POST("", highscoreHandler.CreateHighscore)
				highscores.GET("/:id", highscoreHandler.GetHighscoreByID)
				highscores.PATCH("/:id", highscoreHandler.UpdateHighscore)
				highscores.DELETE("/:id", highscoreHandler.DeleteHighscore)
			}
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
