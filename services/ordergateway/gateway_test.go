package ordergateway

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttpclient"
	"github.com/saigonkitchen/orderfront/services/orderapi"
)

func TestCreateOrder(t *testing.T) {
	t.Run("id extracted from response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order", []byte(`{"foods":[{"foodId":"1","quantity":2}]}`)).
			Return(200, []byte(`{"data":{"id":77}}`), nil)

		orderID, err := gateway.CreateOrder(c, []orderapi.FoodLine{{FoodID: "1", Quantity: 2}})
		assert.NoError(t, err)
		assert.Equal(t, "77", orderID)
	})

	t.Run("missing id is an order-creation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order", gomock.Any()).
			Return(200, []byte(`{"message":"created"}`), nil)

		_, err := gateway.CreateOrder(c, []orderapi.FoodLine{{FoodID: "1", Quantity: 2}})
		assert.Error(t, err)
		assert.True(t, myerrors.IsRetryable(err))
	})

	t.Run("network failure is a remote-call error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order", gomock.Any()).
			Return(0, []byte{}, fmt.Errorf("connection refused"))

		_, err := gateway.CreateOrder(c, []orderapi.FoodLine{{FoodID: "1", Quantity: 2}})
		assert.Error(t, err)
		assert.True(t, myerrors.IsRetryable(err))
	})

	t.Run("backend error message is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order", gomock.Any()).
			Return(500, []byte(`{"data":{"message":"kitchen closed"}}`), nil)

		_, err := gateway.CreateOrder(c, []orderapi.FoodLine{{FoodID: "1", Quantity: 2}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "kitchen closed")
	})
}

func TestUpdateFoodOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, sender, gateway := setup(ctrl)

	sender.EXPECT().
		Send(gomock.Any(), http.MethodPut, "http://backend/api/order/77/foods", []byte(`{"foodInfo":[{"foodId":"1","quantity":3}]}`)).
		Return(200, []byte(`{}`), nil)

	err := gateway.UpdateFoodOrder(c, "77", []orderapi.FoodLine{{FoodID: "1", Quantity: 3}})
	assert.NoError(t, err)
}

func TestCreatePayment(t *testing.T) {
	t.Run("usable link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order/77/payment", gomock.Nil()).
			Return(200, []byte(`{"code":"00","paymentUrl":"https://pay.example.com/tx/abc","message":"ok"}`), nil)

		link, err := gateway.CreatePayment(c, "77")
		assert.NoError(t, err)
		assert.True(t, link.IsUsable())
		assert.Equal(t, "https://pay.example.com/tx/abc", link.PaymentURL)
	})

	t.Run("success code without url is not usable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, sender, gateway := setup(ctrl)

		sender.EXPECT().
			Send(gomock.Any(), http.MethodPost, "http://backend/api/order/77/payment", gomock.Nil()).
			Return(200, []byte(`{"code":"00","message":"ok"}`), nil)

		link, err := gateway.CreatePayment(c, "77")
		assert.NoError(t, err)
		assert.False(t, link.IsUsable())
	})
}

func TestUpdateOrderState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, sender, gateway := setup(ctrl)

	sender.EXPECT().
		Send(gomock.Any(), http.MethodPut, "http://backend/api/order/77/state", []byte(`{"orderState":"DONE"}`)).
		Return(200, []byte(`{}`), nil)

	err := gateway.UpdateOrderState(c, "77", orderapi.OrderStateDone)
	assert.NoError(t, err)
}

func TestGetOrderByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, sender, gateway := setup(ctrl)

	sender.EXPECT().
		Send(gomock.Any(), http.MethodGet, "http://backend/api/order/77", gomock.Nil()).
		Return(200, []byte(`{"orderState":"PENDING","foods":[{"foodId":"1","name":"Phở bò","price":50000,"quantity":2}],"totalPrice":100000}`), nil)

	order, err := gateway.GetOrderByID(c, "77")
	assert.NoError(t, err)
	assert.Equal(t, "77", order.ID)
	assert.Equal(t, orderapi.OrderStatePending, order.State)
	assert.Len(t, order.Foods, 1)
}

func setup(ctrl *gomock.Controller) (context.Context, *myhttpclient.MockHTTPSender, OrderGateway) {
	c := context.TODO()
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	gateway := New("http://backend", sender)

	return c, sender, gateway
}
