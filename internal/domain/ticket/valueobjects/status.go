package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen     TicketStatus = "OPEN"
	StatusPending  TicketStatus = "PENDING"
	StatusResolved TicketStatus = "RESOLVED"
	StatusClosed   TicketStatus = "CLOSED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusPending:  true,
	StatusResolved: true,
	StatusClosed:   true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusPending,
		StatusResolved,
		StatusClosed,
	},
	StatusPending: {
		StatusOpen,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusOpen,
		StatusPending,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
