package cartapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	formcodec "github.com/go-playground/form/v4"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
)

// Cookie keys shared by the cart, checkout and payment-return services.
// There used to be a second snapshot key next to cart_items; the concept is
// one cookie per concern, so everything reads and writes these three.
const (
	CartCookieName = "cart_items"
	CartCookieTTL  = 7 * 24 * time.Hour

	OrderIDCookieName = "orderId"
	OrderIDCookieTTL  = 30 * 24 * time.Hour

	SessionCookieName = "session_uid"
	SessionCookieTTL  = 30 * 24 * time.Hour
)

type CartLine struct {
	FoodID   string `json:"foodId" form:"foodId"`
	Name     string `json:"name" form:"name"`
	Price    int64  `json:"price" form:"price"`
	ImageURL string `json:"image,omitempty" form:"image"`
	Quantity int    `json:"quantity" form:"quantity"`
}

func (l CartLine) LinePrice() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart keeps set semantics on FoodID and list semantics for display:
// a line keeps its position for as long as it lives.
type Cart struct {
	Lines []CartLine
}

// Add increments the quantity when the food is already in the cart,
// otherwise appends a fresh line with quantity 1.
func (c *Cart) Add(product CartLine) {
	for i, line := range c.Lines {
		if line.FoodID == product.FoodID {
			c.Lines[i].Quantity++
			return
		}
	}

	product.Quantity = 1
	c.Lines = append(c.Lines, product)
}

// Remove is a no-op when the food is not in the cart.
func (c *Cart) Remove(foodID string) {
	kept := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.FoodID != foodID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// UpdateQuantity rejects quantities below 1: deleting a line is Remove's job.
// Reports whether the cart was mutated.
func (c *Cart) UpdateQuantity(foodID string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	for i, line := range c.Lines {
		if line.FoodID == foodID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}

	return false
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.LinePrice()
	}
	return total
}

func (c Cart) TotalPriceFormatted() string {
	return fmt.Sprintf("%d đ", c.TotalPrice())
}

// CookieValue serializes the cart for the cart_items cookie.
func (c Cart) CookieValue() string {
	jsonBytes, err := json.Marshal(c.Lines)
	if err != nil {
		// a slice of plain structs cannot fail to marshal
		return "[]"
	}
	return string(jsonBytes)
}

// ParseCookieValue is forgiving: corrupt cookie content yields an error so the
// caller can log it, together with an empty cart it can keep using.
func ParseCookieValue(value string) (Cart, error) {
	if value == "" {
		return Cart{}, nil
	}

	lines := []CartLine{}
	err := json.Unmarshal([]byte(value), &lines)
	if err != nil {
		return Cart{}, fmt.Errorf("error parsing cart cookie: %s", err)
	}

	return Cart{Lines: lines}, nil
}

func NewLineFromRequest(r *http.Request) (CartLine, error) {
	err := r.ParseForm()
	if err != nil {
		return CartLine{}, myerrors.NewInvalidInputError(err)
	}
	return NewLineFromValues(r.Form)
}

func NewLineFromValues(values url.Values) (CartLine, error) {
	line := CartLine{}
	err := formcodec.NewDecoder().Decode(&line, values)
	if err != nil {
		return line, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if line.FoodID == "" {
		return line, myerrors.NewInvalidInputErrorf("missing foodId")
	}

	return line, nil
}
