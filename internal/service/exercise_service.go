package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/repository"
	"athme/training-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrUploadURLFailed   = errors.New("failed to generate upload URL")
	ErrDownloadURLFailed = errors.New("failed to generate download URL")
)

// ExerciseDetail is a library entry plus, when a demo video exists, a
// short-lived download URL for it.
type ExerciseDetail struct {
	Exercise     domain.Exercise `json:"exercise"`
	VideoURL     string          `json:"videoUrl,omitempty"`
	URLExpiresAt time.Time       `json:"urlExpiresAt,omitempty"`
}

// UploadTarget is a presigned PUT URL the client uploads a demo video to.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ExerciseService serves the exercise library and its demo videos.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id primitive.ObjectID) (*ExerciseDetail, error)
	// RequestVideoUpload returns a presigned PUT URL and records the
	// object key on the exercise. The client uploads directly to storage.
	RequestVideoUpload(ctx context.Context, id primitive.ObjectID, contentType string) (*UploadTarget, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo, fileStorage: fileStorage}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetExercise loads one library entry and presigns its demo video, if
// one has been uploaded.
func (s *exerciseService) GetExercise(ctx context.Context, id primitive.ObjectID) (*ExerciseDetail, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	detail := &ExerciseDetail{Exercise: *exercise}
	if exercise.VideoObjectKey != "" && s.fileStorage != nil {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.VideoObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDownloadURLFailed, err)
		}
		detail.VideoURL = url
		detail.URLExpiresAt = time.Now().Add(storage.DefaultPresignedURLExpiry)
	}
	return detail, nil
}

// RequestVideoUpload mints a fresh object key, presigns a PUT for it,
// and stores the key on the exercise. Replacing a video just points the
// exercise at the new key.
func (s *exerciseService) RequestVideoUpload(ctx context.Context, id primitive.ObjectID, contentType string) (*UploadTarget, error) {
	if _, err := s.exerciseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if contentType == "" {
		contentType = "video/mp4"
	}

	objectKey := fmt.Sprintf("exercises/%s/%s", id.Hex(), uuid.NewString())
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadURLFailed, err)
	}
	if err := s.exerciseRepo.SetVideoObjectKey(ctx, id, objectKey); err != nil {
		return nil, err
	}
	return &UploadTarget{UploadURL: url, ObjectKey: objectKey}, nil
}
