package myerrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHttpStatus(NewInvalidInputError(fmt.Errorf("oops"))))
	assert.Equal(t, http.StatusNotFound, GetHttpStatus(NewNotFoundError(fmt.Errorf("oops"))))
	assert.Equal(t, http.StatusInternalServerError, GetHttpStatus(NewInternalError(fmt.Errorf("oops"))))
	assert.Equal(t, http.StatusBadRequest, GetHttpStatus(NewEmptyCartError()))
	assert.Equal(t, http.StatusUnauthorized, GetHttpStatus(NewAuthRequiredError()))
	assert.Equal(t, http.StatusBadGateway, GetHttpStatus(NewRemoteCallError(fmt.Errorf("oops"))))
	assert.Equal(t, http.StatusInternalServerError, GetHttpStatus(fmt.Errorf("plain error")))
	assert.Equal(t, http.StatusInternalServerError, GetHttpStatus(nil))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsEmptyCart(NewEmptyCartError()))
	assert.False(t, IsEmptyCart(NewAuthRequiredError()))

	assert.True(t, IsAuthRequired(NewAuthRequiredError()))
	assert.False(t, IsAuthRequired(NewInternalError(fmt.Errorf("oops"))))

	assert.True(t, IsRetryable(NewRemoteCallError(fmt.Errorf("oops"))))
	assert.True(t, IsRetryable(NewOrderCreationError(fmt.Errorf("no id in response"))))
	assert.False(t, IsRetryable(NewEmptyCartError()))
	assert.False(t, IsRetryable(fmt.Errorf("plain error")))
}

func TestWrapped(t *testing.T) {
	inner := NewRemoteCallError(fmt.Errorf("connection refused"))
	outer := fmt.Errorf("error submitting order: %w", inner)

	assert.True(t, IsRetryable(outer))
	assert.Equal(t, http.StatusBadGateway, GetHttpStatus(outer))
}
