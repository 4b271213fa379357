package api

import (
	"net/http"

	"athme/training-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	goalService service.GoalService,
	planService service.PlanService,
	checkInService service.CheckInService,
	exerciseService service.ExerciseService,
	logService service.LogService,
) {
	authHandler := NewAuthHandler(authService)
	goalHandler := NewGoalHandler(goalService)
	planHandler := NewPlanHandler(planService, checkInService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	logHandler := NewLogHandler(logService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		protected.GET("/me", authHandler.GetProfile)
		protected.PUT("/me", authHandler.UpdateProfile)

		// --- Sports & Goals ---
		protected.GET("/sports", goalHandler.ListSports)
		goalGroup := protected.Group("/goals")
		{
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.GET("", goalHandler.ListGoals)
			goalGroup.GET("/:goalId", goalHandler.GetGoal)
			goalGroup.PUT("/:goalId/status", goalHandler.UpdateGoalStatus)
		}

		// --- Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.GET("/current", planHandler.GetCurrentPlan)
			planGroup.GET("/today", planHandler.GetTodayWorkout)
		}

		// --- Weeks & Check-ins ---
		weekGroup := protected.Group("/weeks")
		{
			weekGroup.GET("/:weekId", planHandler.GetWeek)
			weekGroup.POST("/:weekId/check-in", planHandler.SubmitCheckIn)
			weekGroup.GET("/:weekId/check-in", planHandler.GetCheckIn)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.PUT("/:workoutId/day", planHandler.MoveWorkout)
			workoutGroup.POST("/:workoutId/skip", planHandler.SkipWorkout)
			workoutGroup.POST("/:workoutId/log", logHandler.LogWorkout)
			workoutGroup.POST("/:workoutId/sets", logHandler.LogSet)
			workoutGroup.GET("/:workoutId/log", logHandler.GetLog)
		}

		// --- Exercise library ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.POST("/:exerciseId/video-upload", exerciseHandler.RequestVideoUpload)
		}

		// --- History ---
		protected.GET("/history", logHandler.GetHistory)
	}
}
