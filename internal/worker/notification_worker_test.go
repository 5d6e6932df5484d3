package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/ticket-stats/internal/config"
	"github.com/spec-kit/ticket-stats/internal/events"
	"github.com/spec-kit/ticket-stats/internal/service"
)

func TestStartNotificationWorkerRegistersHandlers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	dispatcher := events.NewInMemoryDispatcher()

	started := StartNotificationWorker(service.NewNotificationService(dispatcher, logger, config.NotificationConfig{Enabled: true}), logger)
	require.True(t, started)

	enabled := logs.FilterMessage("ticket notifications enabled").All()
	require.Len(t, enabled, 1)
	assert.Equal(t, []interface{}{"ticket_created", "ticket_removed"}, enabled[0].ContextMap()["events"])

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventTicketCreated, TicketID: 9}))
	assert.Equal(t, 1, logs.FilterMessage("TicketCreated").Len())
}

func TestStartNotificationWorkerDisabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	dispatcher := events.NewInMemoryDispatcher()

	started := StartNotificationWorker(service.NewNotificationService(dispatcher, logger, config.NotificationConfig{}), logger)
	assert.False(t, started)
	assert.Equal(t, 1, logs.FilterMessage("ticket notifications disabled").Len())

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventTicketCreated, TicketID: 9}))
	assert.Zero(t, logs.FilterMessage("TicketCreated").Len())
}

func TestStartNotificationWorkerNil(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, StartNotificationWorker(nil, nil))
	})
}
