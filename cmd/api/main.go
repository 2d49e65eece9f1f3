package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/bikya/bikya-backend/internal/handler/http"
	redisclient "github.com/bikya/bikya-backend/internal/infrastructure/cache"
	"github.com/bikya/bikya-backend/internal/infrastructure/config"
	"github.com/bikya/bikya-backend/internal/infrastructure/database"
	externalservices "github.com/bikya/bikya-backend/internal/infrastructure/external_services"
	"github.com/bikya/bikya-backend/internal/infrastructure/jwt"
	"github.com/bikya/bikya-backend/internal/infrastructure/logger"
	passwordservice "github.com/bikya/bikya-backend/internal/infrastructure/password_service"
	"github.com/bikya/bikya-backend/internal/infrastructure/payment"
	randomgenerator "github.com/bikya/bikya-backend/internal/infrastructure/random_generator"
	"github.com/bikya/bikya-backend/internal/infrastructure/repository/mongodb"
	"github.com/bikya/bikya-backend/internal/infrastructure/storage"
	"github.com/bikya/bikya-backend/internal/infrastructure/store"
	"github.com/bikya/bikya-backend/internal/infrastructure/uuidgen"
	"github.com/bikya/bikya-backend/internal/infrastructure/validator"
	"github.com/bikya/bikya-backend/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))
	bikeRepo, err := mongodb.NewBikeRepository(context.Background(), db)
	if err != nil {
		log.Fatalf("Failed to initialize bike repository: %v", err)
	}
	bookingRepo := mongodb.NewBookingRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	mailService := externalservices.NewEmailService(
		os.Getenv("EMAIL_HOST"),
		os.Getenv("EMAIL_PORT"),
		os.Getenv("EMAIL_USERNAME"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		os.Getenv("EMAIL_FROM"),
	)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	fileStorage, err := storage.NewFileStorage()
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	gateway := payment.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, mailService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	bikeUsecase := usecase.NewBikeUsecase(bikeRepo, fileStorage, appLogger, uuidGenerator)
	bookingUsecase := usecase.NewBookingUsecase(bookingRepo, bikeRepo, documentRepo, gateway, mailService, appLogger, appConfig, uuidGenerator)
	paymentUsecase := usecase.NewPaymentUsecase(bookingRepo, gateway, appLogger, appConfig)
	documentUsecase := usecase.NewDocumentUsecase(documentRepo, userRepo, fileStorage, mailService, appLogger, uuidGenerator)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			bikeUsecase.SetBikeCache(store.NewBikeCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, bikeUsecase, bookingUsecase,
		paymentUsecase, documentUsecase, appConfig,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
