package events

import (
	"time"

	"github.com/spec-kit/ticket-stats/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketRemoved EventType = "ticket_removed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketPayload summarizes the classified fields of a ticket.
type TicketPayload struct {
	Type     domain.TicketType   `json:"type"`
	Severity domain.Severity     `json:"severity"`
	Status   domain.TicketStatus `json:"status"`
	CVE      string              `json:"cve,omitempty"`
}

// NewTicketPayload builds the payload for ticket.
func NewTicketPayload(ticket domain.Ticket) TicketPayload {
	return TicketPayload{
		Type:     ticket.Type,
		Severity: ticket.Severity,
		Status:   ticket.Status,
		CVE:      ticket.CVE,
	}
}
