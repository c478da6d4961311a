package kitchen

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/saigonkitchen/orderfront/lib/mycontext"
	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/myhttp"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mypubsub"
	"github.com/saigonkitchen/orderfront/lib/mystore"
	"github.com/saigonkitchen/orderfront/lib/mytime"
	"github.com/saigonkitchen/orderfront/services/checkout/checkoutevents"
)

//go:embed templates
var templateFolder embed.FS
var (
	ticketListPageTemplate *template.Template
)

func init() {
	ticketListPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/ticket_list.html"))
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(ticketStore mystore.Store[Ticket], subscriber mypubsub.PubSub, nower mytime.Nower) *webService {
	logger := mylog.New("kitchen")
	return &webService{
		logger:  logger,
		service: newService(ticketStore, subscriber, nower, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/kitchen", s.ticketListPage()).Methods("GET")

	// Pubsub pushes order events here
	router.HandleFunc("/api/kitchen/event", s.handleEventEnvelope()).Methods("POST")

	return s.service.Subscribe(c)
}

func (s *webService) ticketListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		tickets, err := s.service.listTickets(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = ticketListPageTemplate.Execute(w, tickets)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := checkoutevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}
