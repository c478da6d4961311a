package paymentreturn

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
	"github.com/saigonkitchen/orderfront/lib/mystore"
	"github.com/saigonkitchen/orderfront/lib/mytime"
	"github.com/saigonkitchen/orderfront/services/cartapi"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
)

//go:embed templates
var templateFolder embed.FS
var (
	successPageTemplate *template.Template
	failurePageTemplate *template.Template
)

func init() {
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/return_success.html"))
	failurePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/return_failure.html"))
}

type webService struct {
	logger       mylog.Logger
	service      *service
	stateFactory localstate.Factory
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(callbackStore mystore.Store[CallbackRecord], gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, nower mytime.Nower, stateFactory localstate.Factory) *webService {
	logger := mylog.New("paymentreturn")
	return &webService{
		logger:       logger,
		service:      newService(callbackStore, gateway, publisher, nower, logger),
		stateFactory: stateFactory,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/payment/return", s.returnPage()).Methods("GET")

	return s.service.CreateTopics(c)
}

func (s *webService) returnPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		state := s.stateFactory(w, r)

		orderUID, exists := state.Get(cartapi.OrderIDCookieName)
		if !exists {
			// nothing pending, probably a stale bookmark
			s.logger.Log(c, "", mylog.SeverityWarn, "Payment redirect without pending order")
			http.Redirect(w, r, fmt.Sprintf("%s/menu", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
			return
		}

		code := r.URL.Query().Get("code")

		outcome, err := s.service.handleCallback(c, state, orderUID, code)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		pageTemplate := failurePageTemplate
		if outcome.Success {
			pageTemplate = successPageTemplate
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = pageTemplate.Execute(w, outcome)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}
