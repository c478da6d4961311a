package menu

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
	"github.com/saigonkitchen/orderfront/lib/mystore"
)

//go:embed templates
var templateFolder embed.FS

// The dish images referenced by the seeded catalog ship with the binary.
//
//go:embed static
var staticFolder embed.FS

var (
	menuListPageTemplate *template.Template
)

func init() {
	menuListPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/menu_list.html"))
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(foodStore mystore.Store[Food]) *webService {
	logger := mylog.New("menu")
	return &webService{
		logger:  logger,
		service: newService(foodStore, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.menuListPage()).Methods("GET")
	router.HandleFunc("/menu", s.menuListPage()).Methods("GET")
	router.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFolder))).Methods("GET")

	return s.service.seedWhenEmpty(c)
}

func (s *webService) menuListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		foods, err := s.service.listFoods(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = menuListPageTemplate.Execute(w, foods)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}
