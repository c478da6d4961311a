package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/mypublisher"
	"github.com/saigonkitchen/orderfront/services/cartapi"
	"github.com/saigonkitchen/orderfront/services/checkout/checkoutevents"
	"github.com/saigonkitchen/orderfront/services/orderapi"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
)

var (
	paymentLink = orderapi.PaymentLink{
		Code:       "00",
		PaymentURL: "https://pay.example.com/txn/abc123",
	}
	contactForm = url.Values{
		"fullName": {"Nguyễn Văn An"},
		"phone":    {"0901234567"},
		"address":  {"12 Lê Lợi, Quận 1"},
	}
)

func TestCheckoutService(t *testing.T) {

	t.Run("Submit with first order creates and redirects to payment", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, publisher := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		gateway.EXPECT().CreateOrder(gomock.Any(), orderapi.FoodLinesFromCart(aCart())).Return("42", nil)
		gateway.EXPECT().UpdateOrderInfo(gomock.Any(), "42", gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), "42").Return(paymentLink, nil)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, paymentLink.PaymentURL, response.Header().Get("Location"))
		orderUID, exists := state.Get(cartapi.OrderIDCookieName)
		assert.True(t, exists)
		assert.Equal(t, "42", orderUID)
		// cart window is renewed, content intact
		value, exists := state.Get(cartapi.CartCookieName)
		assert.True(t, exists)
		assert.Equal(t, aCart().CookieValue(), value)
	})

	t.Run("Submit with existing order updates instead of creating", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, publisher := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		state.Set(cartapi.OrderIDCookieName, "42", cartapi.OrderIDCookieTTL)
		gateway.EXPECT().UpdateFoodOrder(gomock.Any(), "42", orderapi.FoodLinesFromCart(aCart())).Return(nil)
		gateway.EXPECT().UpdateOrderInfo(gomock.Any(), "42", gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), "42").Return(paymentLink, nil)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, paymentLink.PaymentURL, response.Header().Get("Location"))
		orderUID, _ := state.Get(cartapi.OrderIDCookieName)
		assert.Equal(t, "42", orderUID)
	})

	t.Run("Two submissions create exactly once", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, publisher := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("42", nil).Times(1)
		gateway.EXPECT().UpdateFoodOrder(gomock.Any(), "42", gomock.Any()).Return(nil).Times(1)
		gateway.EXPECT().UpdateOrderInfo(gomock.Any(), "42", gomock.Any()).Return(nil).Times(2)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(nil).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), "42").Return(paymentLink, nil).Times(2)

		// when
		first := postForm(router, "/checkout", contactForm)
		second := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusSeeOther, first.Code)
		assert.Equal(t, http.StatusSeeOther, second.Code)
	})

	t.Run("Submit with empty cart fails without reaching the backend", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, _, _ := setup(t, ctrl)

		// given
		givenSignedIn(state)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Submit without session redirects to login", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, _, _ := setup(t, ctrl)

		// given
		givenCart(state)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "http://localhost/login", response.Header().Get("Location"))
	})

	t.Run("Update failure leaves order identity untouched", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, _ := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		state.Set(cartapi.OrderIDCookieName, "42", cartapi.OrderIDCookieTTL)
		gateway.EXPECT().UpdateFoodOrder(gomock.Any(), "42", gomock.Any()).
			Return(myRemoteError())

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusBadGateway, response.Code)
		orderUID, exists := state.Get(cartapi.OrderIDCookieName)
		assert.True(t, exists)
		assert.Equal(t, "42", orderUID)
	})

	t.Run("Unusable payment link keeps the shopper on the page", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, publisher := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		state.Set(cartapi.OrderIDCookieName, "42", cartapi.OrderIDCookieTTL)
		gateway.EXPECT().UpdateFoodOrder(gomock.Any(), "42", gomock.Any()).Return(nil)
		gateway.EXPECT().UpdateOrderInfo(gomock.Any(), "42", gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), "42").Return(orderapi.PaymentLink{
			Code:    "99",
			Message: "Provider unavailable",
		}, nil)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Empty(t, response.Header().Get("Location"))
		assert.Contains(t, response.Body.String(), "Provider unavailable")
		// order identity and cart survive for a retry
		_, exists := state.Get(cartapi.OrderIDCookieName)
		assert.True(t, exists)
		_, exists = state.Get(cartapi.CartCookieName)
		assert.True(t, exists)
	})

	t.Run("Failed event publish does not block payment", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, publisher := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("42", nil)
		gateway.EXPECT().UpdateOrderInfo(gomock.Any(), "42", gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).
			Return(myRemoteError())
		gateway.EXPECT().CreatePayment(gomock.Any(), "42").Return(paymentLink, nil)

		// when
		response := postForm(router, "/checkout", contactForm)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, paymentLink.PaymentURL, response.Header().Get("Location"))
	})

	t.Run("Checkout page with existing order shows order state", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, _ := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		state.Set(cartapi.OrderIDCookieName, "42", cartapi.OrderIDCookieTTL)
		gateway.EXPECT().GetOrderByID(gomock.Any(), "42").Return(orderapi.RemoteOrder{
			ID:    "42",
			State: orderapi.OrderStatePending,
		}, nil)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/checkout", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Existing order 42")
		assert.Contains(t, response.Body.String(), "PENDING")
	})

	t.Run("Checkout page survives unreachable backend", func(t *testing.T) {
		// setup
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		router, state, gateway, _ := setup(t, ctrl)

		// given
		givenSignedIn(state)
		givenCart(state)
		state.Set(cartapi.OrderIDCookieName, "42", cartapi.OrderIDCookieTTL)
		gateway.EXPECT().GetOrderByID(gomock.Any(), "42").
			Return(orderapi.RemoteOrder{}, myRemoteError())

		// when
		request, _ := http.NewRequest(http.MethodGet, "/checkout", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Phở bò")
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *localstate.InMemState, *ordergateway.MockOrderGateway, *mypublisher.MockPublisher) {
	c := context.TODO()

	state := localstate.NewInMemState()
	gateway := ordergateway.NewMockOrderGateway(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	publisher.EXPECT().CreateTopic(gomock.Any(), checkoutevents.TopicName).Return(nil)

	sut := NewWebService(gateway, publisher, localstate.NewInMemFactory(state))
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router, state, gateway, publisher
}

func aCart() cartapi.Cart {
	return cartapi.Cart{Lines: []cartapi.CartLine{
		{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 2},
		{FoodID: "ca_phe_sua", Name: "Cà phê sữa đá", Price: 20000, Quantity: 1},
	}}
}

func givenCart(state *localstate.InMemState) {
	state.Set(cartapi.CartCookieName, aCart().CookieValue(), cartapi.CartCookieTTL)
}

func givenSignedIn(state *localstate.InMemState) {
	state.Set(cartapi.SessionCookieName, "session-123", cartapi.SessionCookieTTL)
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Host = "localhost"
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func myRemoteError() error {
	return myerrors.NewRemoteCallError(fmt.Errorf("backend replied with http status 500"))
}
