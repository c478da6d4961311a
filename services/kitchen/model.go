package kitchen

import "time"

type ticketStatus string

const (
	statusReceived  ticketStatus = "RECEIVED"
	statusCooking   ticketStatus = "COOKING"
	statusCancelled ticketStatus = "CANCELLED"
)

// Ticket is the kitchen's view on an order: created when the shopper submits,
// released to the cooks once payment came through.
type Ticket struct {
	OrderUID     string
	Status       ticketStatus
	TotalPrice   int64
	LineCount    int
	SubmittedAt  time.Time
	LastModified *time.Time
}

func (t Ticket) IsFinal() bool {
	return t.Status == statusCooking || t.Status == statusCancelled
}
