package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// UserProfileRepository defines the profile and friendship operations
// the service needs.
type UserProfileRepository interface {
	GetDetails(ctx context.Context, username string) (*models.UserDetails, error)
	Rename(ctx context.Context, username, newUsername string) (string, error)
	UpdateDescription(ctx context.Context, username string, description *string) error
	Delete(ctx context.Context, username string) (*models.DeletedUser, error)
	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	ListFollowers(ctx context.Context, username string) ([]string, error)
	ListFollowing(ctx context.Context, username string) ([]string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService handles profile and friendship operations and publishes
// activity events for downstream consumers.
type UserService struct {
	repo        UserProfileRepository
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. A nil kafkaWriter disables
// event publishing.
func NewUserService(repo UserProfileRepository, kafkaWriter KafkaWriter) *UserService {
	return &UserService{repo: repo, kafkaWriter: kafkaWriter}
}

// publishActivity publishes an activity event. Publishing is
// best-effort: a broker failure is logged and never fails the
// user-facing operation.
func publishActivity(ctx context.Context, w KafkaWriter, eventType, actor, subject string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.ActivityEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		Actor:      actor,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(actor),
		Value: payload,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "type", eventType, "error", err)
		return
	}

	logger.Log.Infow("activity event published", "type", eventType, "actor", actor, "subject", subject)
}

// GetProfile returns a user's public profile, or nil when absent.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.UserDetails, error) {
	return s.repo.GetDetails(ctx, username)
}

// Rename changes the user's username.
func (s *UserService) Rename(ctx context.Context, username, newUsername string) (string, error) {
	return s.repo.Rename(ctx, username, newUsername)
}

// UpdateDescription sets the user's profile description.
func (s *UserService) UpdateDescription(ctx context.Context, username string, description *string) error {
	return s.repo.UpdateDescription(ctx, username, description)
}

// DeleteAccount removes the user and, via cascades, their friendships
// and library.
func (s *UserService) DeleteAccount(ctx context.Context, username string) (*models.DeletedUser, error) {
	return s.repo.Delete(ctx, username)
}

// Follow adds a follow edge and publishes a user_followed event.
func (s *UserService) Follow(ctx context.Context, follower, followee string) error {
	if err := s.repo.Follow(ctx, follower, followee); err != nil {
		return err
	}
	publishActivity(ctx, s.kafkaWriter, models.ActivityFollowed, follower, followee)
	return nil
}

// Unfollow removes a follow edge and publishes a user_unfollowed event.
func (s *UserService) Unfollow(ctx context.Context, follower, followee string) error {
	if err := s.repo.Unfollow(ctx, follower, followee); err != nil {
		return err
	}
	publishActivity(ctx, s.kafkaWriter, models.ActivityUnfollowed, follower, followee)
	return nil
}

// Followers lists the usernames following the given user.
func (s *UserService) Followers(ctx context.Context, username string) ([]string, error) {
	return s.repo.ListFollowers(ctx, username)
}

// Following lists the usernames the given user follows.
func (s *UserService) Following(ctx context.Context, username string) ([]string, error) {
	return s.repo.ListFollowing(ctx, username)
}
