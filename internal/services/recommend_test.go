package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/services"
)

func TestRecommendationService_ExplicitTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Dune; Hyperion")
			assert.Contains(t, prompt, "recommend exactly one book title")
			return "  Ender's Game by Orson Scott Card\n", nil
		})

	got, err := svc.Recommend(context.Background(), "alice", []string{"Dune", "Hyperion"})
	assert.NoError(t, err)
	assert.Equal(t, "Ender's Game by Orson Scott Card", got)
}

func TestRecommendationService_ResolvesLibraryTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockLibrary.EXPECT().
		List(gomock.Any(), "alice").
		Return([]models.LibraryEntry{
			{Username: "alice", BookID: "vol-1"},
			{Username: "alice", BookID: "vol-2"},
			{Username: "alice", BookID: "vol-3"},
		}, nil)
	mockVolumes.EXPECT().
		GetVolume(gomock.Any(), "vol-1").
		Return(&models.BookResult{ID: "vol-1", Title: "Dune"}, nil)
	// An unresolvable volume is skipped, not fatal.
	mockVolumes.EXPECT().
		GetVolume(gomock.Any(), "vol-2").
		Return(nil, errors.New("volume not found"))
	mockVolumes.EXPECT().
		GetVolume(gomock.Any(), "vol-3").
		Return(&models.BookResult{ID: "vol-3", Title: "Hyperion"}, nil)
	mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Dune; Hyperion")
			return "Ender's Game", nil
		})

	got, err := svc.Recommend(context.Background(), "alice", nil)
	assert.NoError(t, err)
	assert.Equal(t, "Ender's Game", got)
}

func TestRecommendationService_NoTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockLibrary.EXPECT().
		List(gomock.Any(), "alice").
		Return(nil, nil)

	_, err := svc.Recommend(context.Background(), "alice", nil)
	assert.ErrorIs(t, err, services.ErrNoTitles)
}

func TestRecommendationService_LibraryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockLibrary.EXPECT().
		List(gomock.Any(), "alice").
		Return(nil, errors.New("db error"))

	_, err := svc.Recommend(context.Background(), "alice", nil)
	assert.EqualError(t, err, "db error")
}

func TestRecommendationService_GeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		Return("", errors.New("quota exceeded"))

	_, err := svc.Recommend(context.Background(), "alice", []string{"Dune"})
	assert.EqualError(t, err, "quota exceeded")
}

func TestRecommendationService_CapsTitleCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	titles := make([]string, 30)
	for i := range titles {
		titles[i] = fmt.Sprintf("Book %d", i)
	}

	mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Book 19")
			assert.NotContains(t, prompt, "Book 20")
			return "Something new", nil
		})

	_, err := svc.Recommend(context.Background(), "alice", titles)
	assert.NoError(t, err)
}

func TestRecommendationService_NormalizesTitleWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := services.NewMockLibraryRepo(ctrl)
	mockVolumes := services.NewMockVolumeGetter(ctrl)
	mockGenerator := services.NewMockTextGenerator(ctrl)
	svc := services.NewRecommendationService(mockLibrary, mockVolumes, mockGenerator)

	mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "The Left Hand of Darkness")
			assert.False(t, strings.Contains(prompt, "\n"))
			return "Something new", nil
		})

	_, err := svc.Recommend(context.Background(), "alice", []string{"The Left\n Hand   of Darkness"})
	assert.NoError(t, err)
}
