package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"athme/training-app/internal/api"
	"athme/training-app/internal/config"
	"athme/training-app/internal/repository/mongo"
	"athme/training-app/internal/service"
	"athme/training-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Athme Training Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureSportIndexes(ctx, appDB.Collection("sports"))
		mongo.EnsureGoalIndexes(ctx, appDB.Collection("goals"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureTrainingPlanIndexes(ctx, appDB.Collection("training_plans"))
		mongo.EnsureTrainingWeekIndexes(ctx, appDB.Collection("training_weeks"))
		mongo.EnsureWorkoutIndexes(ctx, appDB)
		mongo.EnsureCheckInIndexes(ctx, appDB.Collection("weekly_check_ins"))
		mongo.EnsureWorkoutLogIndexes(ctx, appDB)
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	sportRepo := mongo.NewMongoSportRepository(appDB)
	goalRepo := mongo.NewMongoGoalRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	planRepo := mongo.NewMongoTrainingPlanRepository(appDB)
	weekRepo := mongo.NewMongoTrainingWeekRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	checkInRepo := mongo.NewMongoCheckInRepository(appDB)
	logRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	txManager := mongo.NewTransactionManager(dbClient)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	goalService := service.NewGoalService(goalRepo, sportRepo)
	planService := service.NewPlanService(goalRepo, sportRepo, userRepo, exerciseRepo, planRepo, weekRepo, workoutRepo, txManager)
	checkInService := service.NewCheckInService(checkInRepo, weekRepo, planRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, fileStorage)
	logService := service.NewLogService(logRepo, workoutRepo, weekRepo, planRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, goalService, planService, checkInService, exerciseService, logService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting.")
}
