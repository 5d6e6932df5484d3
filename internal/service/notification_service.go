package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-stats/internal/config"
	"github.com/spec-kit/ticket-stats/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to ticket events and returns the event types it
// subscribed to. Nothing is registered when notifications are disabled.
func (n *NotificationService) RegisterHandlers() []events.EventType {
	if n.dispatcher == nil || !n.cfg.Enabled {
		return nil
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketRemoved, n.handleTicketRemoved)
	return []events.EventType{events.EventTicketCreated, events.EventTicketRemoved}
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated",
		zap.String("event_id", event.ID),
		zap.Int64("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketRemoved(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketRemoved",
		zap.String("event_id", event.ID),
		zap.Int64("ticket_id", event.TicketID))
	return nil
}
