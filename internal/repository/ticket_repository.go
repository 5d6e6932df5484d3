package repository

import (
	"sync"
	"sync/atomic"

	"github.com/spec-kit/ticket-stats/internal/domain"
)

// TicketRepository encapsulates ticket storage and id assignment.
type TicketRepository interface {
	GenerateNewID() int64
	Add(ticket domain.Ticket)
	Remove(ticket domain.Ticket)
	Get(id int64) (domain.Ticket, bool)
	List() []domain.Ticket
	Count() int
	Reset()
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[int64]domain.Ticket
	lastID  atomic.Int64
}

// NewMemoryTicketRepository instantiates an empty in-memory repository whose
// first generated id is 1.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{
		tickets: make(map[int64]domain.Ticket),
	}
}

// GenerateNewID returns the next id. Ids are never handed out twice, even if
// the caller never stores them.
func (r *memoryTicketRepository) GenerateNewID() int64 {
	return r.lastID.Add(1)
}

// Add stores ticket under its id, replacing any previous entry.
func (r *memoryTicketRepository) Add(ticket domain.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = ticket
}

// Remove deletes the entry for ticket.ID. Missing entries are ignored.
func (r *memoryTicketRepository) Remove(ticket domain.Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, ticket.ID)
}

func (r *memoryTicketRepository) Get(id int64) (domain.Ticket, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	return ticket, ok
}

// List returns a snapshot of all tickets in no particular order.
func (r *memoryTicketRepository) List() []domain.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		out = append(out, ticket)
	}
	return out
}

func (r *memoryTicketRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets)
}

// Reset clears every ticket and restarts id generation at 1. Test use only.
func (r *memoryTicketRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.tickets)
	r.lastID.Store(0)
}
