package orderapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/services/cartapi"
)

// OrderState mirrors the state enum owned by the ordering backend.
type OrderState string

const (
	OrderStatePending OrderState = "PENDING"
	OrderStatePaid    OrderState = "PAID"
	OrderStateDone    OrderState = "DONE"
	OrderStateCancel  OrderState = "CANCEL"
	OrderStateFailed  OrderState = "FAILED"
)

type FoodLine struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

// FoodLinesFromCart maps cart lines to the {foodId, quantity} shape the
// backend expects on create and update calls.
func FoodLinesFromCart(cart cartapi.Cart) []FoodLine {
	lines := make([]FoodLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, FoodLine{
			FoodID:   l.FoodID,
			Quantity: l.Quantity,
		})
	}
	return lines
}

// OrderInfo is the customer/delivery metadata attached to an order before payment.
type OrderInfo struct {
	FullName string `json:"fullName" form:"fullName"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Address  string `json:"address" form:"address"`
	Note     string `json:"note,omitempty" form:"note"`
}

func (i OrderInfo) IsZero() bool {
	return i == OrderInfo{}
}

func NewOrderInfoFromRequest(r *http.Request) (OrderInfo, error) {
	err := r.ParseForm()
	if err != nil {
		return OrderInfo{}, myerrors.NewInvalidInputError(err)
	}
	return NewOrderInfoFromValues(r.Form)
}

func NewOrderInfoFromValues(values url.Values) (OrderInfo, error) {
	info := OrderInfo{}
	err := formcodec.NewDecoder().Decode(&info, values)
	if err != nil {
		return info, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}
	return info, nil
}

// RemoteOrder is owned by the backend; the storefront only renders it.
type RemoteOrder struct {
	ID         string      `json:"id"`
	State      OrderState  `json:"orderState"`
	Foods      []OrderFood `json:"foods"`
	TotalPrice int64       `json:"totalPrice"`
}

type OrderFood struct {
	FoodID   string `json:"foodId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// PaymentSuccessCode is the provider's sole success sentinel, both on the
// create-payment response and on the redirect back.
const PaymentSuccessCode = "00"

type PaymentLink struct {
	Code       string `json:"code"`
	PaymentURL string `json:"paymentUrl"`
	Message    string `json:"message"`
}

// IsUsable demands both the success code and a non-empty URL: a success code
// without a URL is a malformed response, not a payment opportunity.
func (p PaymentLink) IsUsable() bool {
	return p.Code == PaymentSuccessCode && p.PaymentURL != ""
}
