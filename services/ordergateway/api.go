package ordergateway

import (
	"context"

	"github.com/saigonkitchen/orderfront/services/orderapi"
)

// OrderGateway is the storefront's view on the external ordering backend.
// The backend owns every order; this interface only triggers transitions
// and re-reads state.
//
//go:generate mockgen -source=api.go -package ordergateway -destination gateway_mock.go OrderGateway
type OrderGateway interface {
	CreateOrder(c context.Context, lines []orderapi.FoodLine) (string, error)
	UpdateFoodOrder(c context.Context, orderID string, lines []orderapi.FoodLine) error
	UpdateOrderInfo(c context.Context, orderID string, info orderapi.OrderInfo) error
	CreatePayment(c context.Context, orderID string) (orderapi.PaymentLink, error)
	UpdateOrderState(c context.Context, orderID string, state orderapi.OrderState) error
	GetOrderByID(c context.Context, orderID string) (orderapi.RemoteOrder, error)
}
