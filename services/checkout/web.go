package checkout

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/mycontext"
	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttp"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mypublisher"
	"github.com/saigonkitchen/orderfront/services/orderapi"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
)

//go:embed templates
var templateFolder embed.FS
var (
	checkoutPageTemplate      *template.Template
	paymentFailedPageTemplate *template.Template
)

func init() {
	checkoutPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/checkout.html"))
	paymentFailedPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/payment_failed.html"))
}

type webService struct {
	logger       mylog.Logger
	service      *service
	stateFactory localstate.Factory
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, stateFactory localstate.Factory) *webService {
	logger := mylog.New("checkout")
	return &webService{
		logger:       logger,
		service:      newService(gateway, publisher, logger),
		stateFactory: stateFactory,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/checkout", s.checkoutPage()).Methods("GET")
	router.HandleFunc("/checkout", s.submitPage()).Methods("POST")
	// the cart page posts here
	router.HandleFunc("/cart/checkout", s.submitPage()).Methods("POST")

	return s.service.CreateTopics(c)
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		page := s.service.compose(c, s.stateFactory(w, r))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := checkoutPageTemplate.Execute(w, page)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) submitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		info, err := orderapi.NewOrderInfoFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		link, err := s.service.submit(c, s.stateFactory(w, r), info)
		if err != nil {
			if myerrors.IsAuthRequired(err) {
				http.Redirect(w, r, fmt.Sprintf("%s/login", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
				return
			}
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if !link.IsUsable() {
			// the shopper stays here, no redirect on a dead link
			s.logger.Log(c, "", mylog.SeverityWarn, "Unusable payment link (code %s): %s", link.Code, link.Message)

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			err = paymentFailedPageTemplate.Execute(w, link)
			if err != nil {
				errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
			}
			return
		}

		// off to the payment provider
		http.Redirect(w, r, link.PaymentURL, http.StatusSeeOther)
	}
}
