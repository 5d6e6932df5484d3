package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-stats/internal/events"
	"github.com/spec-kit/ticket-stats/internal/service"
)

// StartNotificationWorker registers notification handlers on the dispatcher
// and reports which ticket events will be logged. It returns false when no
// handler was registered.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notificationService == nil {
		logger.Debug("notification worker skipped: no service")
		return false
	}

	subscribed := notificationService.RegisterHandlers()
	if len(subscribed) == 0 {
		logger.Info("ticket notifications disabled")
		return false
	}

	logger.Info("ticket notifications enabled", zap.Strings("events", eventNames(subscribed)))
	return true
}

func eventNames(types []events.EventType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
