package service

import (
	"context"

	"github.com/lshigami/edulink/internal/dto"
	"github.com/rs/zerolog/log"
)

const ReminderTriggeredMessage = "Reminder triggered (mock)"

// ReminderService queues study reminders. Delivery is not wired to any
// channel yet; requests are only logged.
type ReminderService interface {
	Trigger(ctx context.Context, req dto.ReminderRequest) string
}

type reminderService struct{}

func NewReminderService() ReminderService {
	return &reminderService{}
}

func (s *reminderService) Trigger(_ context.Context, req dto.ReminderRequest) string {
	log.Info().Str("userId", req.UserID).Str("topic", req.Topic).Str("channel", req.Channel).Msg("Reminder queued")
	return ReminderTriggeredMessage
}
