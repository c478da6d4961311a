package checkout

import (
	"context"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mypublisher"
	"github.com/saigonkitchen/orderfront/services/cartapi"
	"github.com/saigonkitchen/orderfront/services/checkout/checkoutevents"
	"github.com/saigonkitchen/orderfront/services/orderapi"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
)

type service struct {
	logger    mylog.Logger
	gateway   ordergateway.OrderGateway
	publisher mypublisher.Publisher
}

func newService(gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		logger:    logger,
		gateway:   gateway,
		publisher: publisher,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	return s.publisher.CreateTopic(c, checkoutevents.TopicName)
}

type checkoutPage struct {
	Cart     cartapi.Cart
	Order    *orderapi.RemoteOrder
	SignedIn bool
	Info     orderapi.OrderInfo
}

// compose gathers everything the checkout page shows. A backend that cannot
// deliver the existing order must not break the page: the shopper can still
// review the cart and submit again.
func (s *service) compose(c context.Context, state localstate.LocalState) checkoutPage {
	page := checkoutPage{
		Cart: s.loadCart(c, state),
	}

	_, page.SignedIn = state.Get(cartapi.SessionCookieName)

	orderUID, exists := state.Get(cartapi.OrderIDCookieName)
	if exists {
		order, err := s.gateway.GetOrderByID(c, orderUID)
		if err != nil {
			s.logger.Log(c, orderUID, mylog.SeverityWarn, "Could not fetch order %s: %s", orderUID, err)
		} else {
			page.Order = &order
		}
	}

	return page
}

// submit walks the whole submission chain and hands back the payment link.
// The order identity in the shopper's browser is only ever advanced, never
// dropped: an update failure leaves the existing orderId in place so the next
// attempt targets the same order.
func (s *service) submit(c context.Context, state localstate.LocalState, info orderapi.OrderInfo) (orderapi.PaymentLink, error) {
	cart := s.loadCart(c, state)
	if cart.IsEmpty() {
		return orderapi.PaymentLink{}, myerrors.NewEmptyCartError()
	}

	sessionUID, signedIn := state.Get(cartapi.SessionCookieName)
	if !signedIn {
		return orderapi.PaymentLink{}, myerrors.NewAuthRequiredError()
	}

	lines := orderapi.FoodLinesFromCart(cart)

	orderUID, exists := state.Get(cartapi.OrderIDCookieName)
	isNewOrder := !exists
	if exists {
		err := s.gateway.UpdateFoodOrder(c, orderUID, lines)
		if err != nil {
			return orderapi.PaymentLink{}, err
		}
		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Updated food of order %s", orderUID)
	} else {
		createdUID, err := s.gateway.CreateOrder(c, lines)
		if err != nil {
			return orderapi.PaymentLink{}, err
		}
		orderUID = createdUID
		state.Set(cartapi.OrderIDCookieName, orderUID, cartapi.OrderIDCookieTTL)
		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Created order %s", orderUID)
	}

	// renew the cart window so its content survives an abandoned payment
	state.Set(cartapi.CartCookieName, cart.CookieValue(), cartapi.CartCookieTTL)

	if !info.IsZero() {
		err := s.gateway.UpdateOrderInfo(c, orderUID, info)
		if err != nil {
			return orderapi.PaymentLink{}, err
		}
	}

	err := s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderSubmitted{
		OrderUID:   orderUID,
		SessionUID: sessionUID,
		TotalPrice: cart.TotalPrice(),
		LineCount:  len(cart.Lines),
		IsNewOrder: isNewOrder,
	})
	if err != nil {
		// the order is already placed, a missed event must not block payment
		s.logger.Log(c, orderUID, mylog.SeverityWarn, "Could not publish submit-event for order %s: %s", orderUID, err)
	}

	link, err := s.gateway.CreatePayment(c, orderUID)
	if err != nil {
		return orderapi.PaymentLink{}, err
	}

	return link, nil
}

func (s *service) loadCart(c context.Context, state localstate.LocalState) cartapi.Cart {
	value, _ := state.Get(cartapi.CartCookieName)
	cart, err := cartapi.ParseCookieValue(value)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Corrupt cart cookie, starting empty: %s", err)
		return cartapi.Cart{}
	}
	return cart
}
