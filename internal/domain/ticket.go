package domain

import (
	"strings"

	apperrors "github.com/spec-kit/ticket-stats/pkg/util"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "OPEN"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	return s == TicketStatusOpen || s == TicketStatusClosed
}

// Ticket is an immutable issue record. Values are copied on every read from
// the store, so holders never observe later writes.
type Ticket struct {
	ID          int64
	Description string
	Resolution  string
	Type        TicketType
	Severity    Severity
	Status      TicketStatus
	CVE         string
}

// HasCVE reports whether the ticket carries a CVE identifier.
func (t Ticket) HasCVE() bool {
	return t.CVE != ""
}

// IsOpen reports whether the ticket status is OPEN.
func (t Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen
}

// IsClosedHighSeverity reports whether the ticket is closed with ERROR severity.
func (t Ticket) IsClosedHighSeverity() bool {
	return t.Status == TicketStatusClosed && t.Severity == SeverityError
}

// TicketInput describes the fields needed to build a ticket.
type TicketInput struct {
	ID          int64
	Description string
	Resolution  string
	Type        TicketType
	Severity    Severity
	Status      TicketStatus
	CVE         string
}

// NewTicket validates input and returns the ticket value. A CVE on a type
// that is not CVE-eligible is rejected.
func NewTicket(input TicketInput) (Ticket, error) {
	if input.ID <= 0 {
		return Ticket{}, apperrors.NewValidationError("ticket id must be positive", map[string]any{"id": input.ID})
	}
	if !input.Type.Valid() {
		return Ticket{}, apperrors.NewValidationError("unknown ticket type", map[string]any{"type": string(input.Type)})
	}
	if !input.Severity.Valid() {
		return Ticket{}, apperrors.NewValidationError("unknown severity", map[string]any{"severity": string(input.Severity)})
	}
	if !input.Status.Valid() {
		return Ticket{}, apperrors.NewValidationError("unknown status", map[string]any{"status": string(input.Status)})
	}
	cve := strings.TrimSpace(input.CVE)
	if cve != "" && !input.Type.IsCVE() {
		return Ticket{}, apperrors.NewValidationError("ticket type does not carry a cve", map[string]any{
			"type": string(input.Type),
			"cve":  cve,
		})
	}
	return Ticket{
		ID:          input.ID,
		Description: input.Description,
		Resolution:  input.Resolution,
		Type:        input.Type,
		Severity:    input.Severity,
		Status:      input.Status,
		CVE:         cve,
	}, nil
}
