package api

import (
	"errors"
	"fmt"
	"net/http"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type CreateGoalRequest struct {
	SportSlug   string `json:"sportSlug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate" binding:"required"`
}

type UpdateGoalStatusRequest struct {
	Status domain.GoalStatus `json:"status" binding:"required,oneof=active completed cancelled"`
}

// ListSports returns the supported sports catalog.
func (h *GoalHandler) ListSports(c *gin.Context) {
	sports, err := h.goalService.ListSports(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list sports")
		return
	}
	c.JSON(http.StatusOK, sports)
}

// CreateGoal records a new goal for the authenticated user.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req.SportSlug, req.Name, req.Description, req.TargetDate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTargetDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrSportNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create goal")
		}
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// ListGoals returns all of the user's goals.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoal returns one goal by id.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load goal")
		}
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoalStatus marks a goal completed or cancelled.
func (h *GoalHandler) UpdateGoalStatus(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	goalID, ok := parseIDParam(c, "goalId")
	if !ok {
		return
	}

	var req UpdateGoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.goalService.UpdateGoalStatus(c.Request.Context(), userID, goalID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidGoalStatus) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update goal")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal updated"})
}
