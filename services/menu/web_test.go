package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/saigonkitchen/orderfront/lib/mystore"
)

func TestMenuService(t *testing.T) {

	t.Run("Menu page lists the seeded catalog", func(t *testing.T) {
		// setup
		router, _ := setup(t)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/menu", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Phở bò")
		assert.Contains(t, response.Body.String(), "50000")
		assert.Contains(t, response.Body.String(), `action="/cart/pho_bo"`)
	})

	t.Run("Root serves the menu as well", func(t *testing.T) {
		// setup
		router, _ := setup(t)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Bánh mì thịt")
	})

	t.Run("Dish images are served", func(t *testing.T) {
		// setup
		router, _ := setup(t)

		// given
		menuRequest, _ := http.NewRequest(http.MethodGet, "/menu", nil)
		menuResponse := httptest.NewRecorder()
		router.ServeHTTP(menuResponse, menuRequest)
		assert.Contains(t, menuResponse.Body.String(), `src="/static/pho_bo.svg"`)

		// when
		request, _ := http.NewRequest(http.MethodGet, "/static/pho_bo.svg", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "<svg")
	})

	t.Run("Seeding is idempotent", func(t *testing.T) {
		// setup
		c := context.TODO()
		_, foodStore := setup(t)

		// given
		before, err := foodStore.List(c)
		assert.NoError(t, err)

		// when
		sut := NewWebService(foodStore)
		err = sut.RegisterEndpoints(c, mux.NewRouter())
		assert.NoError(t, err)

		// then
		after, err := foodStore.List(c)
		assert.NoError(t, err)
		assert.Equal(t, len(before), len(after))
	})
}

func setup(t *testing.T) (*mux.Router, mystore.Store[Food]) {
	c := context.TODO()

	foodStore, _, err := mystore.NewInMemoryStore[Food](c)
	assert.NoError(t, err)

	sut := NewWebService(foodStore)
	router := mux.NewRouter()
	err = sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return router, foodStore
}
