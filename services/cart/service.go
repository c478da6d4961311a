package cart

import (
	"context"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/services/cartapi"
)

type service struct {
	logger mylog.Logger
}

func newService(logger mylog.Logger) *service {
	return &service{
		logger: logger,
	}
}

// loadCart never fails: a corrupt cookie is logged and treated as an empty cart.
func (s *service) loadCart(c context.Context, state localstate.LocalState) cartapi.Cart {
	value, _ := state.Get(cartapi.CartCookieName)
	cart, err := cartapi.ParseCookieValue(value)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Corrupt cart cookie, starting empty: %s", err)
		return cartapi.Cart{}
	}
	return cart
}

// saveCart re-serializes the whole cart on every mutation, renewing the expiry window.
func (s *service) saveCart(state localstate.LocalState, cart cartapi.Cart) {
	state.Set(cartapi.CartCookieName, cart.CookieValue(), cartapi.CartCookieTTL)
}

func (s *service) addItem(c context.Context, state localstate.LocalState, product cartapi.CartLine) cartapi.Cart {
	cart := s.loadCart(c, state)
	cart.Add(product)
	s.saveCart(state, cart)

	s.logger.Log(c, product.FoodID, mylog.SeverityInfo, "Added %s to cart (%d lines)", product.FoodID, len(cart.Lines))

	return cart
}

func (s *service) removeItem(c context.Context, state localstate.LocalState, foodID string) cartapi.Cart {
	cart := s.loadCart(c, state)
	cart.Remove(foodID)
	s.saveCart(state, cart)

	s.logger.Log(c, foodID, mylog.SeverityInfo, "Removed %s from cart (%d lines)", foodID, len(cart.Lines))

	return cart
}

func (s *service) updateQuantity(c context.Context, state localstate.LocalState, foodID string, quantity int) cartapi.Cart {
	cart := s.loadCart(c, state)
	if !cart.UpdateQuantity(foodID, quantity) {
		// rejected: quantity below 1 or unknown food, cookie stays as-is
		s.logger.Log(c, foodID, mylog.SeverityWarn, "Rejected quantity %d for %s", quantity, foodID)
		return cart
	}
	s.saveCart(state, cart)

	return cart
}

// clear removes the cookie outright instead of persisting an empty list,
// so a late write cannot resurrect stale content.
func (s *service) clear(c context.Context, state localstate.LocalState) {
	state.Clear(cartapi.CartCookieName)

	s.logger.Log(c, "", mylog.SeverityInfo, "Cleared cart")
}
