package kitchen

import (
	"context"
	"fmt"
	"sort"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttp"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mypubsub"
	"github.com/saigonkitchen/orderfront/lib/mystore"
	"github.com/saigonkitchen/orderfront/lib/mytime"
	"github.com/saigonkitchen/orderfront/services/checkout/checkoutevents"
)

type service struct {
	logger      mylog.Logger
	ticketStore mystore.Store[Ticket]
	subscriber  mypubsub.PubSub
	nower       mytime.Nower
}

func newService(ticketStore mystore.Store[Ticket], subscriber mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		logger:      logger,
		ticketStore: ticketStore,
		subscriber:  subscriber,
		nower:       nower,
	}
}

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/kitchen/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

func (s *service) OnOrderSubmitted(c context.Context, topic string, event checkoutevents.OrderSubmitted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: order %s submitted (%d lines)", event.OrderUID, event.LineCount)

	now := s.nower.Now()

	return s.ticketStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		ticket, found, err := s.ticketStore.Get(c, event.OrderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if found && ticket.IsFinal() {
			return nil
		}

		if !found {
			ticket = Ticket{
				OrderUID:    event.OrderUID,
				Status:      statusReceived,
				SubmittedAt: now,
			}
		}
		ticket.TotalPrice = event.TotalPrice
		ticket.LineCount = event.LineCount
		ticket.LastModified = &now

		err = s.ticketStore.Put(c, event.OrderUID, ticket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
}

func (s *service) OnPaymentCompleted(c context.Context, topic string, event checkoutevents.PaymentCompleted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: payment on order %s -> success:%v", event.OrderUID, event.Success)

	now := s.nower.Now()

	return s.ticketStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		ticket, found, err := s.ticketStore.Get(c, event.OrderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			// payment event overtook the submit event
			ticket = Ticket{
				OrderUID:    event.OrderUID,
				SubmittedAt: now,
			}
		}
		if ticket.IsFinal() {
			return nil
		}

		ticket.Status = statusCancelled
		if event.Success {
			ticket.Status = statusCooking
		}
		ticket.LastModified = &now

		err = s.ticketStore.Put(c, event.OrderUID, ticket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
}

func (s *service) listTickets(c context.Context) ([]Ticket, error) {
	tickets, err := s.ticketStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].SubmittedAt.Before(tickets[j].SubmittedAt)
	})

	return tickets, nil
}
