package paymentreturn

import (
	"context"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mypublisher"
	"github.com/saigonkitchen/orderfront/lib/mystore"
	"github.com/saigonkitchen/orderfront/lib/mytime"
	"github.com/saigonkitchen/orderfront/services/cartapi"
	"github.com/saigonkitchen/orderfront/services/checkout/checkoutevents"
	"github.com/saigonkitchen/orderfront/services/orderapi"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
)

type service struct {
	logger        mylog.Logger
	callbackStore mystore.Store[CallbackRecord]
	gateway       ordergateway.OrderGateway
	publisher     mypublisher.Publisher
	nower         mytime.Nower
}

func newService(callbackStore mystore.Store[CallbackRecord], gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		logger:        logger,
		callbackStore: callbackStore,
		gateway:       gateway,
		publisher:     publisher,
		nower:         nower,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	return s.publisher.CreateTopic(c, checkoutevents.TopicName)
}

type callbackOutcome struct {
	Success bool
	Message string
}

// handleCallback finalizes the payment round-trip. The backend state change
// and the completed-event run at most once per order id, no matter how often
// the provider redirect is replayed; the browser cleanup runs every time.
func (s *service) handleCallback(c context.Context, state localstate.LocalState, orderUID string, code string) (callbackOutcome, error) {
	outcome := callbackOutcome{
		Success: code == orderapi.PaymentSuccessCode,
		Message: messageForCode(code),
	}

	claimed, err := s.claim(c, orderUID, code, outcome.Success)
	if err != nil {
		return callbackOutcome{}, err
	}

	if claimed {
		s.finalizeOrder(c, orderUID, code, outcome.Success)
	} else {
		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Callback for order %s already handled", orderUID)
	}

	// The order identity has served its purpose either way. On success the
	// cart is spent too; on failure it stays so the shopper can retry.
	state.Clear(cartapi.OrderIDCookieName)
	if outcome.Success {
		state.Clear(cartapi.CartCookieName)
	}

	return outcome, nil
}

// claim reports whether this request won the right to perform side effects.
func (s *service) claim(c context.Context, orderUID string, code string, success bool) (bool, error) {
	var claimed bool
	err := s.callbackStore.RunInTransaction(c, func(c context.Context) error {
		_, exists, err := s.callbackStore.Get(c, orderUID)
		if err != nil {
			return err
		}
		if exists {
			claimed = false
			return nil
		}

		claimed = true
		return s.callbackStore.Put(c, orderUID, CallbackRecord{
			OrderUID:     orderUID,
			Phase:        phaseProcessing,
			Success:      success,
			ProviderCode: code,
			ReceivedAt:   s.nower.Now(),
		})
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

// finalizeOrder pushes the terminal state to the backend and announces the
// outcome. Both are best effort: the shopper already paid or cancelled, a
// flaky backend must not turn the landing page into an error.
func (s *service) finalizeOrder(c context.Context, orderUID string, code string, success bool) {
	finalState := orderapi.OrderStateCancel
	if success {
		finalState = orderapi.OrderStateDone
	}

	err := s.gateway.UpdateOrderState(c, orderUID, finalState)
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityError, "Could not mark order %s as %s: %s", orderUID, finalState, err)
	}

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.PaymentCompleted{
		OrderUID:     orderUID,
		Success:      success,
		ProviderCode: code,
		FinalState:   string(finalState),
	})
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityWarn, "Could not publish completed-event for order %s: %s", orderUID, err)
	}

	err = s.callbackStore.Put(c, orderUID, CallbackRecord{
		OrderUID:     orderUID,
		Phase:        phaseDone,
		Success:      success,
		ProviderCode: code,
		ReceivedAt:   s.nower.Now(),
	})
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityError, "Could not complete callback record for order %s: %s", orderUID, err)
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Finalized order %s as %s (code %s)", orderUID, finalState, code)
}
