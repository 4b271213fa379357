package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"athme/training-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFileStorage struct {
	uploads   []string
	downloads []string
}

func (s *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	s.uploads = append(s.uploads, objectKey)
	return fmt.Sprintf("https://storage.test/upload/%s", objectKey), nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	s.downloads = append(s.downloads, objectKey)
	return fmt.Sprintf("https://storage.test/download/%s", objectKey), nil
}

func (s *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	return nil
}

func TestGetExercisePresignsVideo(t *testing.T) {
	library := &fakeExerciseRepo{}
	files := &fakeFileStorage{}
	svc := NewExerciseService(library, files)

	plain := &domain.Exercise{Name: "Back Squat", Type: domain.TypeStrength}
	plainID, err := library.Create(context.Background(), plain)
	require.NoError(t, err)

	withVideo := &domain.Exercise{Name: "Box Jump", Type: domain.TypePlyometric, VideoObjectKey: "exercises/abc/demo"}
	videoID, err := library.Create(context.Background(), withVideo)
	require.NoError(t, err)

	detail, err := svc.GetExercise(context.Background(), plainID)
	require.NoError(t, err)
	assert.Empty(t, detail.VideoURL)
	assert.Empty(t, files.downloads)

	detail, err = svc.GetExercise(context.Background(), videoID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/download/exercises/abc/demo", detail.VideoURL)
	assert.False(t, detail.URLExpiresAt.IsZero())

	_, err = svc.GetExercise(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestRequestVideoUploadStoresKey(t *testing.T) {
	library := &fakeExerciseRepo{}
	files := &fakeFileStorage{}
	svc := NewExerciseService(library, files)

	id, err := library.Create(context.Background(), &domain.Exercise{Name: "Back Squat", Type: domain.TypeStrength})
	require.NoError(t, err)

	target, err := svc.RequestVideoUpload(context.Background(), id, "video/webm")
	require.NoError(t, err)
	assert.NotEmpty(t, target.UploadURL)
	assert.Contains(t, target.ObjectKey, "exercises/"+id.Hex()+"/")

	stored, err := library.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, target.ObjectKey, stored.VideoObjectKey)

	_, err = svc.RequestVideoUpload(context.Background(), primitive.NewObjectID(), "")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
