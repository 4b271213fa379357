package api

import (
	"errors"
	"fmt"
	"net/http"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan and check-in service dependencies.
type PlanHandler struct {
	planService    service.PlanService
	checkInService service.CheckInService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, checkInService service.CheckInService) *PlanHandler {
	return &PlanHandler{planService: planService, checkInService: checkInService}
}

type GeneratePlanRequest struct {
	GoalID string `json:"goalId" binding:"required"`
}

type MoveWorkoutRequest struct {
	DayOfWeek *int `json:"dayOfWeek" binding:"required,min=0,max=6"`
}

type SubmitCheckInRequest struct {
	Rating  domain.CheckInRating `json:"rating" binding:"required,oneof=too_easy on_track too_hard"`
	Comment string               `json:"comment"`
}

// GeneratePlan builds a periodized plan for one of the user's goals.
// Replaces any existing active plan for that goal.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	goalID, err := primitive.ObjectIDFromHex(req.GoalID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goalId format")
		return
	}

	planID, err := h.planService.GeneratePlan(c.Request.Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) || errors.Is(err, service.ErrSportNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate plan")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"planId": planID.Hex()})
}

// GetCurrentPlan returns the user's active plan with its weeks.
func (h *PlanHandler) GetCurrentPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	detail, err := h.planService.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load plan")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetWeek returns one week with its workouts and prescriptions.
func (h *PlanHandler) GetWeek(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	weekID, ok := parseIDParam(c, "weekId")
	if !ok {
		return
	}

	detail, err := h.planService.GetWeek(c.Request.Context(), userID, weekID)
	if err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load week")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetTodayWorkout returns today's scheduled workout, or 204 on a rest
// day.
func (h *PlanHandler) GetTodayWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	detail, err := h.planService.GetTodayWorkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load today's workout")
		}
		return
	}
	if detail == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MoveWorkout reschedules a workout within its week.
func (h *PlanHandler) MoveWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	var req MoveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.planService.MoveWorkout(c.Request.Context(), userID, workoutID, *req.DayOfWeek)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrDayOccupied) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to move workout")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout moved"})
}

// SkipWorkout marks a workout as skipped.
func (h *PlanHandler) SkipWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, ok := parseIDParam(c, "workoutId")
	if !ok {
		return
	}

	err = h.planService.SkipWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to skip workout")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout skipped"})
}

// SubmitCheckIn records how the week felt and adapts upcoming weeks.
func (h *PlanHandler) SubmitCheckIn(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	weekID, ok := parseIDParam(c, "weekId")
	if !ok {
		return
	}

	var req SubmitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.checkInService.SubmitCheckIn(c.Request.Context(), userID, weekID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidRating) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to submit check-in")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCheckIn returns the stored check-in for a week, if any.
func (h *PlanHandler) GetCheckIn(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	weekID, ok := parseIDParam(c, "weekId")
	if !ok {
		return
	}

	checkIn, err := h.checkInService.GetCheckIn(c.Request.Context(), userID, weekID)
	if err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusNotFound, "No check-in recorded for this week")
		}
		return
	}
	c.JSON(http.StatusOK, checkIn)
}
