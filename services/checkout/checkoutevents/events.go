package checkoutevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myevents"
)

const (
	TopicName            = "order"
	orderSubmittedName   = TopicName + ".submitted"
	paymentCompletedName = TopicName + ".paymentCompleted"
)

type OrderEventService interface {
	Subscribe(c context.Context) error
	OnOrderSubmitted(c context.Context, topic string, event OrderSubmitted) error
	OnPaymentCompleted(c context.Context, topic string, event PaymentCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service OrderEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderSubmittedName:
		{
			event := OrderSubmitted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderSubmitted(c, envelope.Topic, event)
		}
	case paymentCompletedName:
		{
			event := PaymentCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentCompleted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("event %s", envelope.EventTypeName))
	}
}

type OrderSubmitted struct {
	OrderUID   string
	SessionUID string
	TotalPrice int64
	LineCount  int
	IsNewOrder bool
}

func (e OrderSubmitted) GetEventTypeName() string {
	return orderSubmittedName
}

func (e OrderSubmitted) GetAggregateName() string {
	return e.OrderUID
}

type PaymentCompleted struct {
	OrderUID     string
	Success      bool
	ProviderCode string
	FinalState   string
}

func (e PaymentCompleted) GetEventTypeName() string {
	return paymentCompletedName
}

func (e PaymentCompleted) GetAggregateName() string {
	return e.OrderUID
}
