package session

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
	"github.com/saigonkitchen/orderfront/lib/myuuid"
	"github.com/saigonkitchen/orderfront/services/cartapi"
)

//go:embed templates
var templateFolder embed.FS
var (
	loginPageTemplate *template.Template
)

func init() {
	loginPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/login.html"))
}

// The real identity provider sits elsewhere: this service only mints the
// session_uid that the checkout flow requires before an order may be placed.
type webService struct {
	logger       mylog.Logger
	uuider       myuuid.UUIDer
	stateFactory localstate.Factory
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(uuider myuuid.UUIDer, stateFactory localstate.Factory) *webService {
	return &webService{
		logger:       mylog.New("session"),
		uuider:       uuider,
		stateFactory: stateFactory,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/login", s.loginPage()).Methods("GET")
	router.HandleFunc("/login", s.loginSubmitPage()).Methods("POST")
	router.HandleFunc("/logout", s.logoutPage()).Methods("POST")
}

func (s *webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		_, signedIn := s.stateFactory(w, r).Get(cartapi.SessionCookieName)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := loginPageTemplate.Execute(w, signedIn)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) loginSubmitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		state := s.stateFactory(w, r)
		uid, exists := state.Get(cartapi.SessionCookieName)
		if !exists {
			uid = s.uuider.Create()
		}
		// renew the window on every sign-in
		state.Set(cartapi.SessionCookieName, uid, cartapi.SessionCookieTTL)

		s.logger.Log(c, uid, mylog.SeverityInfo, "Signed in session %s", uid)

		http.Redirect(w, r, fmt.Sprintf("%s/checkout", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *webService) logoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.stateFactory(w, r).Clear(cartapi.SessionCookieName)

		s.logger.Log(c, "", mylog.SeverityInfo, "Signed out")

		http.Redirect(w, r, fmt.Sprintf("%s/menu", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}
