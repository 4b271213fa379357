package api

import (
	"errors"
	"fmt"
	"net/http"

	"athme/training-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type RequestVideoUploadRequest struct {
	ContentType string `json:"contentType"`
}

// ListExercises returns the full exercise library.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise returns one library entry, with a presigned demo-video
// URL when a video exists.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "exerciseId")
	if !ok {
		return
	}

	detail, err := h.exerciseService.GetExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load exercise")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RequestVideoUpload returns a presigned PUT URL for a demo video.
func (h *ExerciseHandler) RequestVideoUpload(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "exerciseId")
	if !ok {
		return
	}

	var req RequestVideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	target, err := h.exerciseService.RequestVideoUpload(c.Request.Context(), exerciseID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, target)
}
