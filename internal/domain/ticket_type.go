package domain

// TicketType enumerates ticket categories.
type TicketType string

const (
	TicketTypeConfiguration TicketType = "CONFIGURATION"
	TicketTypeSecurity      TicketType = "SECURITY"
	TicketTypeVendor        TicketType = "VENDOR"
)

type ticketTypeInfo struct {
	isCVE bool
}

var ticketTypes = map[TicketType]ticketTypeInfo{
	TicketTypeConfiguration: {isCVE: false},
	TicketTypeSecurity:      {isCVE: true},
	TicketTypeVendor:        {isCVE: true},
}

// TicketTypes lists every ticket type in declaration order.
func TicketTypes() []TicketType {
	return []TicketType{TicketTypeConfiguration, TicketTypeSecurity, TicketTypeVendor}
}

// Valid reports whether t is a known ticket type.
func (t TicketType) Valid() bool {
	_, ok := ticketTypes[t]
	return ok
}

// IsCVE reports whether tickets of this type may carry a CVE identifier.
func (t TicketType) IsCVE() bool {
	return ticketTypes[t].isCVE
}

// Severity classifies tickets from INFORMATION (lowest) to ERROR (highest).
type Severity string

const (
	SeverityInformation Severity = "INFORMATION"
	SeverityWarning     Severity = "WARNING"
	SeverityError       Severity = "ERROR"
)

// Severities lists every severity in canonical low to high order.
func Severities() []Severity {
	return []Severity{SeverityInformation, SeverityWarning, SeverityError}
}

// Rank returns the position of s in the canonical order, or -1 when unknown.
func (s Severity) Rank() int {
	for i, sev := range Severities() {
		if sev == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}
