package cart

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/mycontext"
	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttp"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/services/cartapi"
)

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
}

type webService struct {
	logger       mylog.Logger
	service      *service
	stateFactory localstate.Factory
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(stateFactory localstate.Factory) *webService {
	logger := mylog.New("cart")
	return &webService{
		logger:       logger,
		service:      newService(logger),
		stateFactory: stateFactory,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/cart/clear", s.clearPage()).Methods("POST")
	router.HandleFunc("/cart/{foodUID}", s.addItemPage()).Methods("POST")
	router.HandleFunc("/cart/{foodUID}/quantity", s.updateQuantityPage()).Methods("POST")
	router.HandleFunc("/cart/{foodUID}/remove", s.removeItemPage()).Methods("POST")
}

func (s *webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cart := s.service.loadCart(c, s.stateFactory(w, r))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := cartPageTemplate.Execute(w, cart)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		product, err := cartapi.NewLineFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if product.FoodID != mux.Vars(r)["foodUID"] {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("foodId mismatch"))
			return
		}

		s.service.addItem(c, s.stateFactory(w, r), product)

		// Back to the cart
		http.Redirect(w, r, fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *webService) updateQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		foodUID := mux.Vars(r)["foodUID"]

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		quantity, err := strconv.Atoi(r.Form.Get("quantity"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("invalid quantity %s", r.Form.Get("quantity")))
			return
		}

		s.service.updateQuantity(c, s.stateFactory(w, r), foodUID, quantity)

		http.Redirect(w, r, fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		foodUID := mux.Vars(r)["foodUID"]

		s.service.removeItem(c, s.stateFactory(w, r), foodUID)

		http.Redirect(w, r, fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *webService) clearPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.service.clear(c, s.stateFactory(w, r))

		http.Redirect(w, r, fmt.Sprintf("%s/cart", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}
