package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"triviaquest/config"
	"triviaquest/handlers"
	"triviaquest/middleware"
	"triviaquest/models"
	"triviaquest/repository"
	"triviaquest/routes"
	"triviaquest/services"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Question{},
		&models.Answer{},
		&models.Highscore{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	redisClient := config.InitRedis(cfg)

	topicRepo := repository.NewTopicRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	highscoreRepo := repository.NewHighscoreRepository(db)
	userRepo := repository.NewUserRepository(db)

	authService := services.NewAuthService(userRepo, redisClient, cfg.JWTSecret)
	topicService := services.NewTopicService(topicRepo, questionRepo, answerRepo)
	questionService := services.NewQuestionService(questionRepo, topicRepo, answerRepo, highscoreRepo, services.NewRand())
	answerService := services.NewAnswerService(answerRepo, questionRepo)
	highscoreService := services.NewHighscoreService(highscoreRepo)

	if cfg.AdminPassword != "" {
		if err := authService.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
	}

	authHandler := handlers.NewAuthHandler(authService)
	topicHandler := handlers.NewTopicHandler(topicService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	highscoreHandler := handlers.NewHighscoreHandler(highscoreService)

	router := gin.Default()
	router.Use(middleware.CORS(cfg.FrontendURL))

	routes.SetupRoutes(router, authService, authHandler, topicHandler, questionHandler, answerHandler, highscoreHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
