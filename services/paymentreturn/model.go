package paymentreturn

import "time"

type callbackPhase string

const (
	phaseProcessing callbackPhase = "PROCESSING"
	phaseDone       callbackPhase = "DONE"
)

// CallbackRecord is the persisted claim on a payment redirect. The first
// request for an order id claims it inside a transaction; everyone arriving
// later sees the claim and skips the backend side effects.
type CallbackRecord struct {
	OrderUID     string
	Phase        callbackPhase
	Success      bool
	ProviderCode string
	ReceivedAt   time.Time
}
