package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/services/cartapi"
)

func TestCartService(t *testing.T) {

	t.Run("View empty cart", func(t *testing.T) {
		// setup
		router, _ := setup(t)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Your cart is empty")
	})

	t.Run("Add new dish to cart", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// when
		response := postForm(router, "/cart/pho_bo", url.Values{
			"foodId": {"pho_bo"},
			"name":   {"Phở bò"},
			"price":  {"50000"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "http://localhost/cart", response.Header().Get("Location"))
		cart := cartOf(t, state)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("Add same dish twice increments quantity", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// when
		form := url.Values{
			"foodId": {"pho_bo"},
			"name":   {"Phở bò"},
			"price":  {"50000"},
		}
		postForm(router, "/cart/pho_bo", form)
		postForm(router, "/cart/pho_bo", form)

		// then
		cart := cartOf(t, state)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, int64(100000), cart.TotalPrice())
	})

	t.Run("Add without foodId fails", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// when
		response := postForm(router, "/cart/pho_bo", url.Values{
			"name": {"Phở bò"},
		})

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Empty(t, state.Values)
	})

	t.Run("Update quantity", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state, cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 1})

		// when
		response := postForm(router, "/cart/pho_bo/quantity", url.Values{
			"quantity": {"3"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		cart := cartOf(t, state)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
	})

	t.Run("Update quantity below one is rejected", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state, cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 2})

		// when
		response := postForm(router, "/cart/pho_bo/quantity", url.Values{
			"quantity": {"0"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		cart := cartOf(t, state)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("Remove dish", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state,
			cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 1},
			cartapi.CartLine{FoodID: "bun_cha", Name: "Bún chả", Price: 45000, Quantity: 2})

		// when
		response := postForm(router, "/cart/pho_bo/remove", nil)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		cart := cartOf(t, state)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, "bun_cha", cart.Lines[0].FoodID)
	})

	t.Run("Remove absent dish is a no-op", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state, cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 1})

		// when
		response := postForm(router, "/cart/goi_cuon/remove", nil)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		cart := cartOf(t, state)
		assert.Len(t, cart.Lines, 1)
	})

	t.Run("Clear cart removes cookie outright", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state, cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 1})

		// when
		response := postForm(router, "/cart/clear", nil)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		_, exists := state.Get(cartapi.CartCookieName)
		assert.False(t, exists)
	})

	t.Run("Corrupt cookie renders empty cart", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		state.Set(cartapi.CartCookieName, "this is not json", 0)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Your cart is empty")
	})

	t.Run("View filled cart", func(t *testing.T) {
		// setup
		router, state := setup(t)

		// given
		givenCart(state,
			cartapi.CartLine{FoodID: "pho_bo", Name: "Phở bò", Price: 50000, Quantity: 2},
			cartapi.CartLine{FoodID: "ca_phe_sua", Name: "Cà phê sữa đá", Price: 20000, Quantity: 1})

		// when
		request, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Phở bò")
		assert.Contains(t, response.Body.String(), "120000 đ")
	})
}

func setup(t *testing.T) (*mux.Router, *localstate.InMemState) {
	c := context.TODO()

	state := localstate.NewInMemState()
	sut := NewWebService(localstate.NewInMemFactory(state))
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return router, state
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Host = "localhost"
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func givenCart(state *localstate.InMemState, lines ...cartapi.CartLine) {
	state.Set(cartapi.CartCookieName, cartapi.Cart{Lines: lines}.CookieValue(), cartapi.CartCookieTTL)
}

func cartOf(t *testing.T, state *localstate.InMemState) cartapi.Cart {
	value, _ := state.Get(cartapi.CartCookieName)
	cart, err := cartapi.ParseCookieValue(value)
	assert.NoError(t, err)
	return cart
}
