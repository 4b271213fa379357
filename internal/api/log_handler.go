package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogHandler holds the log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

type LogWorkoutRequest struct {
	Status          domain.LogStatus `json:"status" binding:"required,oneof=completed partial skipped"`
	DurationMinutes int              `json:"durationMinutes" binding:"omitempty,min=0"`
	PerceivedEffort int              `json:"perceivedEffort" binding:"omitempty,min=1,max=10"`
	Notes           string           `json:"notes"`
}

type LogSetRequest struct {
	ExerciseID      string  `json:"exerciseId" binding:"required"`
	SetNumber       int     `json:"setNumber" binding:"required,min=1"`
	RepsCompleted   int     `json:"repsCompleted" binding:"omitempty,min=0"`
	WeightKg        float64 `json:"weightKg" binding:"omitempty,min=0"`
	DurationSeconds int     `json:"durationSeconds" binding:"omitempty,min=0"`
	Notes           string  `json:"notes"`
}

// LogWorkout records that the user performed (or skipped) a workout.
func (h *LogHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	log, err := h.logService.LogWorkout(c.Request.Context(), userID, workoutID, service.LogInput{
		Status:          req.Status,
		DurationMinutes: req.DurationMinutes,
		PerceivedEffort: req.PerceivedEffort,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidLogStatus) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log workout")
		}
		return
	}
	c.JSON(http.StatusOK, log)
}

// LogSet records one performed set under the workout's log.
func (h *LogHandler) LogSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format")
		return
	}

	err = h.logService.LogSet(c.Request.Context(), userID, workoutID, service.SetLogInput{
		ExerciseID:      exerciseID,
		SetNumber:       req.SetNumber,
		RepsCompleted:   req.RepsCompleted,
		WeightKg:        req.WeightKg,
		DurationSeconds: req.DurationSeconds,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log set")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Set logged"})
}

// GetLog returns the user's log for a workout with its sets.
func (h *LogHandler) GetLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	detail, err := h.logService.GetLog(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) || errors.Is(err, service.ErrLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load log")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetHistory returns the user's recent workout logs, newest first.
func (h *LogHandler) GetHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	history, err := h.logService.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, history)
}
