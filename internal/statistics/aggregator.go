// Package statistics keeps running severity and CVE counts for tickets.
//
// The aggregator only sees tickets handed to it. Removing a ticket from the
// store does not retract anything counted here.
package statistics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spec-kit/ticket-stats/internal/domain"
)

// Aggregator provides in-memory ticket counters safe for concurrent use.
// The zero value is ready to use; a nil *Aggregator records nothing and
// reports zero counts.
type Aggregator struct {
	mu            sync.Mutex
	severityCount map[domain.Severity]int64
	cveCount      map[string]int64

	openTicketsWithCVE        atomic.Int64
	closedHighSeverityTickets atomic.Int64
}

// NewAggregator initializes counters with every severity at zero.
func NewAggregator() *Aggregator {
	a := &Aggregator{}
	a.mu.Lock()
	a.initLocked()
	a.mu.Unlock()
	return a
}

// initLocked creates the count maps on first use. Callers hold a.mu.
func (a *Aggregator) initLocked() {
	if a.severityCount == nil {
		a.severityCount = make(map[domain.Severity]int64, len(domain.Severities()))
		for _, sev := range domain.Severities() {
			a.severityCount[sev] = 0
		}
	}
	if a.cveCount == nil {
		a.cveCount = make(map[string]int64)
	}
}

// RecordSeverity increments the count for the ticket's severity. Tickets
// without a known severity are ignored.
func (a *Aggregator) RecordSeverity(ticket *domain.Ticket) {
	if a == nil || ticket == nil || !ticket.Severity.Valid() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initLocked()
	a.severityCount[ticket.Severity]++
}

// RecordCVE increments the count for the ticket's CVE identifier, if any.
func (a *Aggregator) RecordCVE(ticket *domain.Ticket) {
	if a == nil || ticket == nil || !ticket.HasCVE() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initLocked()
	a.cveCount[ticket.CVE]++
}

// Analyze classifies a ticket into every counter it contributes to. The
// individual steps are not atomic as a group.
func (a *Aggregator) Analyze(ticket *domain.Ticket) {
	if a == nil || ticket == nil {
		return
	}

	a.RecordSeverity(ticket)

	if ticket.IsClosedHighSeverity() {
		a.closedHighSeverityTickets.Add(1)
	}

	if ticket.Type.IsCVE() {
		a.RecordCVE(ticket)
		if ticket.IsOpen() {
			a.openTicketsWithCVE.Add(1)
		}
	}
}

// OpenTicketsWithCVE returns the number of open tickets of a CVE-eligible type.
func (a *Aggregator) OpenTicketsWithCVE() int64 {
	if a == nil {
		return 0
	}
	return a.openTicketsWithCVE.Load()
}

// ClosedHighSeverityTickets returns the number of closed ERROR tickets.
func (a *Aggregator) ClosedHighSeverityTickets() int64 {
	if a == nil {
		return 0
	}
	return a.closedHighSeverityTickets.Load()
}

// SeverityCounts returns a copy of the per-severity counts. Every severity is present.
func (a *Aggregator) SeverityCounts() map[domain.Severity]int64 {
	out := make(map[domain.Severity]int64, len(domain.Severities()))
	for _, sev := range domain.Severities() {
		out[sev] = 0
	}
	if a == nil {
		return out
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for sev, n := range a.severityCount {
		out[sev] = n
	}
	return out
}

// CVECounts returns a copy of the per-CVE counts.
func (a *Aggregator) CVECounts() map[string]int64 {
	if a == nil {
		return map[string]int64{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]int64, len(a.cveCount))
	for cve, n := range a.cveCount {
		out[cve] = n
	}
	return out
}

// SeverityReport renders one line per severity, lowest first.
func (a *Aggregator) SeverityReport() string {
	snapshot := a.SeverityCounts()

	var sb strings.Builder
	sb.WriteString("Severity Statistics:\n")
	for _, sev := range domain.Severities() {
		fmt.Fprintf(&sb, "%s: %d\n", sev, snapshot[sev])
	}
	return sb.String()
}

// CVEReport renders one line per observed CVE identifier.
func (a *Aggregator) CVEReport() string {
	snapshot := a.CVECounts()

	cves := make([]string, 0, len(snapshot))
	for cve := range snapshot {
		cves = append(cves, cve)
	}
	sort.Strings(cves)

	var sb strings.Builder
	sb.WriteString("CVE Statistics:\n")
	for _, cve := range cves {
		fmt.Fprintf(&sb, "%s: %d\n", cve, snapshot[cve])
	}
	return sb.String()
}
