package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/saigonkitchen/orderfront/lib/localstate"
	"github.com/saigonkitchen/orderfront/lib/myhttpclient"
	"github.com/saigonkitchen/orderfront/lib/mypubsub"
	"github.com/saigonkitchen/orderfront/lib/mypublisher"
	"github.com/saigonkitchen/orderfront/lib/myqueue"
	"github.com/saigonkitchen/orderfront/lib/mystore"
	"github.com/saigonkitchen/orderfront/lib/mytime"
	"github.com/saigonkitchen/orderfront/lib/myuuid"
	"github.com/saigonkitchen/orderfront/services/cart"
	"github.com/saigonkitchen/orderfront/services/checkout"
	"github.com/saigonkitchen/orderfront/services/kitchen"
	"github.com/saigonkitchen/orderfront/services/menu"
	"github.com/saigonkitchen/orderfront/services/ordergateway"
	"github.com/saigonkitchen/orderfront/services/paymentreturn"
	"github.com/saigonkitchen/orderfront/services/session"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	stateFactory := localstate.NewCookieFactory()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup := createPublisher(c, router, pubsub, nower)
	defer publisherCleanup()

	gateway := ordergateway.New(getBackendURL(), myhttpclient.New())

	createMenuService(c, router)
	createCartService(c, router, stateFactory)
	createSessionService(c, router, uuider, stateFactory)
	createCheckoutService(c, router, gateway, publisher, stateFactory)
	createPaymentReturnService(c, router, gateway, publisher, nower, stateFactory)
	createKitchenService(c, router, pubsub, nower)

	startWebServerBlocking(router)
}

func createPublisher(c context.Context, router *mux.Router, pubsub mypubsub.PubSub, nower mytime.Nower) (mypublisher.Publisher, func()) {
	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	publisher.RegisterEndpoints(c, router)

	return publisher, func() {
		publisherCleanup()
		queueCleanup()
	}
}

func createKitchenService(c context.Context, router *mux.Router, pubsub mypubsub.PubSub, nower mytime.Nower) {
	ticketStore, _, err := mystore.New[kitchen.Ticket](c)
	if err != nil {
		log.Fatalf("Error creating ticket store: %s", err)
	}

	kitchenService := kitchen.NewWebService(ticketStore, pubsub, nower)
	err = kitchenService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering kitchen service: %s", err)
	}
}

func createMenuService(c context.Context, router *mux.Router) {
	foodStore, _, err := mystore.New[menu.Food](c)
	if err != nil {
		log.Fatalf("Error creating food store: %s", err)
	}

	menuService := menu.NewWebService(foodStore)
	err = menuService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering menu service: %s", err)
	}
}

func createCartService(c context.Context, router *mux.Router, stateFactory localstate.Factory) {
	cartService := cart.NewWebService(stateFactory)
	cartService.RegisterEndpoints(c, router)
}

func createSessionService(c context.Context, router *mux.Router, uuider myuuid.UUIDer, stateFactory localstate.Factory) {
	sessionService := session.NewWebService(uuider, stateFactory)
	sessionService.RegisterEndpoints(c, router)
}

func createCheckoutService(c context.Context, router *mux.Router, gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, stateFactory localstate.Factory) {
	checkoutService := checkout.NewWebService(gateway, publisher, stateFactory)
	err := checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}
}

func createPaymentReturnService(c context.Context, router *mux.Router, gateway ordergateway.OrderGateway, publisher mypublisher.Publisher, nower mytime.Nower, stateFactory localstate.Factory) {
	callbackStore, _, err := mystore.New[paymentreturn.CallbackRecord](c)
	if err != nil {
		log.Fatalf("Error creating callback store: %s", err)
	}

	returnService := paymentreturn.NewWebService(callbackStore, gateway, publisher, nower, stateFactory)
	err = returnService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering payment-return service: %s", err)
	}
}

func getBackendURL() string {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:9090"
	}
	return backendURL
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
