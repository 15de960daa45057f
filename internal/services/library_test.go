package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/services"
)

func TestLibraryService_Log_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockLibraryRepo(ctrl)
	mockWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewLibraryService(mockRepo, mockWriter)

	rating := 4
	entry := &models.LibraryEntry{Username: "alice", BookID: "vol-1", Rating: &rating}

	mockRepo.EXPECT().
		Upsert(gomock.Any(), "alice", "vol-1", &rating, gomock.Nil(), gomock.Nil(), gomock.Nil()).
		Return(entry, nil)
	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			var event models.ActivityEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.ActivityBookLogged, event.Type)
			assert.Equal(t, "alice", event.Actor)
			assert.Equal(t, "vol-1", event.Subject)
			return nil
		})

	got, err := svc.Log(context.Background(), "alice", "vol-1", &rating, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestLibraryService_Log_RepoErrorSkipsPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockLibraryRepo(ctrl)
	mockWriter := services.NewMockKafkaWriter(ctrl)
	svc := services.NewLibraryService(mockRepo, mockWriter)

	mockRepo.EXPECT().
		Upsert(gomock.Any(), "alice", "vol-1", gomock.Nil(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
		Return(nil, errors.New("db error"))

	_, err := svc.Log(context.Background(), "alice", "vol-1", nil, nil, nil, nil)
	assert.EqualError(t, err, "db error")
}

func TestLibraryService_RemoveAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockLibraryRepo(ctrl)
	svc := services.NewLibraryService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.EXPECT().Remove(gomock.Any(), "alice", "vol-1").Return(nil)
	assert.NoError(t, svc.Remove(ctx, "alice", "vol-1"))

	entries := []models.LibraryEntry{{Username: "alice", BookID: "vol-1"}}
	mockRepo.EXPECT().List(gomock.Any(), "alice").Return(entries, nil)
	got, err := svc.List(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
