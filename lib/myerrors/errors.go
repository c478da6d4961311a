package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type errorKind int

const (
	kindGeneric errorKind = iota
	kindEmptyCart
	kindAuthRequired
	kindOrderCreation
	kindRemoteCall
)

type httpError struct {
	httpCode int
	kind     errorKind
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, kind errorKind, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		kind:     kind,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, kindGeneric, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, kindGeneric, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, kindGeneric, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, kindGeneric, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, kindGeneric, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, kindGeneric, err)
}

// NewEmptyCartError indicates a checkout was attempted on an empty cart.
// User-correctable: no remote call may be made for this condition.
func NewEmptyCartError() *httpError {
	return newError(http.StatusBadRequest, kindEmptyCart, fmt.Errorf("cart is empty"))
}

// NewAuthRequiredError tells the web layer to route the shopper to the login page.
func NewAuthRequiredError() *httpError {
	return newError(http.StatusUnauthorized, kindAuthRequired, fmt.Errorf("sign-in required before checkout"))
}

// NewOrderCreationError indicates the backend accepted the create-order call
// but no order id could be extracted from its response.
func NewOrderCreationError(err error) *httpError {
	return newError(http.StatusBadGateway, kindOrderCreation, err)
}

// NewRemoteCallError wraps any network or HTTP failure against the ordering backend.
func NewRemoteCallError(err error) *httpError {
	return newError(http.StatusBadGateway, kindRemoteCall, err)
}

func IsEmptyCart(err error) bool {
	return isKind(err, kindEmptyCart)
}

func IsAuthRequired(err error) bool {
	return isKind(err, kindAuthRequired)
}

// IsRetryable reports whether the shopper can meaningfully retry the operation
// without changing anything locally.
func IsRetryable(err error) bool {
	return isKind(err, kindOrderCreation) || isKind(err, kindRemoteCall)
}

func isKind(err error, kind errorKind) bool {
	var myError *httpError
	if errors.As(err, &myError) {
		return myError.kind == kind
	}
	return false
}

func GetHttpStatus(err error) int {
	if err != nil {
		var myError httpErrorCoder
		if errors.As(err, &myError) {
			return myError.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}
