package service

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-stats/internal/domain"
	"github.com/spec-kit/ticket-stats/internal/events"
	"github.com/spec-kit/ticket-stats/internal/repository"
	"github.com/spec-kit/ticket-stats/internal/statistics"
	apperrors "github.com/spec-kit/ticket-stats/pkg/util"
)

// Chooser picks a uniform index in [0, n).
type Chooser interface {
	IntN(n int) int
}

// TicketService stores tickets and feeds them to the statistics aggregator.
type TicketService struct {
	tickets    repository.TicketRepository
	stats      *statistics.Aggregator
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cvePool    []string

	randMu sync.Mutex
	rand   Chooser
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	// TicketRepo and Stats default to fresh in-memory instances when nil.
	TicketRepo repository.TicketRepository
	Stats      *statistics.Aggregator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	CVEPool    []string
	// Rand defaults to a time seeded source when nil.
	Rand Chooser
}

// TicketCreateInput describes an explicitly created ticket. The id is assigned by the service.
type TicketCreateInput struct {
	Description string
	Resolution  string
	Type        domain.TicketType
	Severity    domain.Severity
	Status      domain.TicketStatus
	CVE         string
}

// NewTicketService instantiates the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tickets := deps.TicketRepo
	if tickets == nil {
		tickets = repository.NewMemoryTicketRepository()
	}
	stats := deps.Stats
	if stats == nil {
		stats = statistics.NewAggregator()
	}
	r := deps.Rand
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &TicketService{
		tickets:    tickets,
		stats:      stats,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		cvePool:    append([]string(nil), deps.CVEPool...),
		rand:       r,
	}
}

// NewSeededChooser returns a deterministic Chooser for the given seed.
func NewSeededChooser(seed int64) Chooser {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// CreateTicket validates input, assigns an id, stores the ticket and records its statistics.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (domain.Ticket, error) {
	ticket, err := domain.NewTicket(domain.TicketInput{
		ID:          s.tickets.GenerateNewID(),
		Description: strings.TrimSpace(input.Description),
		Resolution:  strings.TrimSpace(input.Resolution),
		Type:        input.Type,
		Severity:    input.Severity,
		Status:      input.Status,
		CVE:         input.CVE,
	})
	if err != nil {
		return domain.Ticket{}, err
	}
	s.register(ctx, ticket)
	return ticket, nil
}

// GenerateTickets creates amount random tickets. CVE-eligible tickets get an
// identifier drawn from the configured pool. Generation stops early when ctx
// is canceled, returning the tickets created so far.
func (s *TicketService) GenerateTickets(ctx context.Context, amount int) ([]domain.Ticket, error) {
	if amount < 0 {
		return nil, apperrors.NewValidationError("amount must not be negative", map[string]any{"amount": amount})
	}
	if len(s.cvePool) == 0 {
		return nil, apperrors.NewValidationError("cve pool is empty", nil)
	}

	out := make([]domain.Ticket, 0, amount)
	for i := 0; i < amount; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		id := s.tickets.GenerateNewID()
		ticket, err := domain.NewTicket(s.randomInput(id))
		if err != nil {
			return out, apperrors.NewInternalError(err)
		}
		s.register(ctx, ticket)
		out = append(out, ticket)
	}
	s.logger.Debug("generated tickets", zap.Int("amount", amount), zap.Int("stored", s.tickets.Count()))
	return out, nil
}

// RemoveTicket deletes a ticket from the store. Its statistics contribution is kept.
func (s *TicketService) RemoveTicket(ctx context.Context, id int64) error {
	ticket, ok := s.tickets.Get(id)
	if !ok {
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
	}
	s.tickets.Remove(ticket)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketRemoved,
		TicketID: ticket.ID,
		Payload:  events.NewTicketPayload(ticket),
	})
	return nil
}

// Statistics returns the aggregator the service feeds.
func (s *TicketService) Statistics() *statistics.Aggregator {
	return s.stats
}

// GetTicket looks up a stored ticket.
func (s *TicketService) GetTicket(id int64) (domain.Ticket, bool) {
	return s.tickets.Get(id)
}

// PrintStatistics writes the severity and CVE reports followed by the scalar counters.
func (s *TicketService) PrintStatistics(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\nOpen tickets with CVE: %d\nClosed tickets with severity %s: %d\n",
		s.stats.SeverityReport(),
		s.stats.CVEReport(),
		s.stats.OpenTicketsWithCVE(),
		domain.SeverityError,
		s.stats.ClosedHighSeverityTickets(),
	)
	return err
}

func (s *TicketService) register(ctx context.Context, ticket domain.Ticket) {
	s.tickets.Add(ticket)
	s.stats.Analyze(&ticket)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload:  events.NewTicketPayload(ticket),
	})
}

func (s *TicketService) randomInput(id int64) domain.TicketInput {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	status := domain.TicketStatusOpen
	if s.rand.IntN(2) == 1 {
		status = domain.TicketStatusClosed
	}
	severities := domain.Severities()
	severity := severities[s.rand.IntN(len(severities))]
	types := domain.TicketTypes()
	ticketType := types[s.rand.IntN(len(types))]

	var cve string
	if ticketType.IsCVE() {
		cve = s.cvePool[s.rand.IntN(len(s.cvePool))]
	}

	return domain.TicketInput{
		ID:          id,
		Description: fmt.Sprintf("Issue #%d", id),
		Resolution:  fmt.Sprintf("Resolution for issue #%d", id),
		Type:        ticketType,
		Severity:    severity,
		Status:      status,
		CVE:         cve,
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err))
	}
}
