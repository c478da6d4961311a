package ordergateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttpclient"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/services/orderapi"
)

type httpGateway struct {
	baseURL string
	sender  myhttpclient.HTTPSender
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(baseURL string, sender myhttpclient.HTTPSender) OrderGateway {
	return &httpGateway{
		baseURL: baseURL,
		sender:  sender,
		logger:  mylog.New("ordergateway"),
	}
}

type createOrderRequest struct {
	Foods []orderapi.FoodLine `json:"foods"`
}

type updateFoodOrderRequest struct {
	FoodInfo []orderapi.FoodLine `json:"foodInfo"`
}

type updateOrderStateRequest struct {
	OrderState orderapi.OrderState `json:"orderState"`
}

func (g *httpGateway) CreateOrder(c context.Context, lines []orderapi.FoodLine) (string, error) {
	respPayload, err := g.send(c, http.MethodPost, "/api/order", createOrderRequest{Foods: lines})
	if err != nil {
		return "", err
	}

	orderID, found := extractOrderID(respPayload)
	if !found {
		return "", myerrors.NewOrderCreationError(fmt.Errorf("no order id in create-order response"))
	}

	return orderID, nil
}

func (g *httpGateway) UpdateFoodOrder(c context.Context, orderID string, lines []orderapi.FoodLine) error {
	_, err := g.send(c, http.MethodPut, fmt.Sprintf("/api/order/%s/foods", orderID), updateFoodOrderRequest{FoodInfo: lines})
	return err
}

func (g *httpGateway) UpdateOrderInfo(c context.Context, orderID string, info orderapi.OrderInfo) error {
	_, err := g.send(c, http.MethodPut, fmt.Sprintf("/api/order/%s", orderID), info)
	return err
}

func (g *httpGateway) CreatePayment(c context.Context, orderID string) (orderapi.PaymentLink, error) {
	respPayload, err := g.send(c, http.MethodPost, fmt.Sprintf("/api/order/%s/payment", orderID), nil)
	if err != nil {
		return orderapi.PaymentLink{}, err
	}

	link := orderapi.PaymentLink{}
	err = json.Unmarshal(respPayload, &link)
	if err != nil {
		return orderapi.PaymentLink{}, myerrors.NewRemoteCallError(fmt.Errorf("error parsing create-payment response: %s", err))
	}

	return link, nil
}

func (g *httpGateway) UpdateOrderState(c context.Context, orderID string, state orderapi.OrderState) error {
	_, err := g.send(c, http.MethodPut, fmt.Sprintf("/api/order/%s/state", orderID), updateOrderStateRequest{OrderState: state})
	return err
}

func (g *httpGateway) GetOrderByID(c context.Context, orderID string) (orderapi.RemoteOrder, error) {
	respPayload, err := g.send(c, http.MethodGet, fmt.Sprintf("/api/order/%s", orderID), nil)
	if err != nil {
		return orderapi.RemoteOrder{}, err
	}

	order := orderapi.RemoteOrder{}
	err = json.Unmarshal(respPayload, &order)
	if err != nil {
		return orderapi.RemoteOrder{}, myerrors.NewRemoteCallError(fmt.Errorf("error parsing order %s: %s", orderID, err))
	}
	if order.ID == "" {
		order.ID = orderID
	}

	return order, nil
}

func (g *httpGateway) send(c context.Context, method string, path string, payload any) ([]byte, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
		}
	}

	httpStatus, respPayload, err := g.sender.Send(c, method, g.baseURL+path, body)
	if err != nil {
		return nil, myerrors.NewRemoteCallError(err)
	}

	if httpStatus < http.StatusOK || httpStatus >= http.StatusMultipleChoices {
		message := extractErrorMessage(httpStatus, respPayload)
		g.logger.Log(c, "", mylog.SeverityWarn, "Backend error on %s %s: %d - %s", method, path, httpStatus, message)
		return nil, myerrors.NewRemoteCallError(fmt.Errorf("%s", message))
	}

	return respPayload, nil
}
