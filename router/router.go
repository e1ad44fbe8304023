package router

import (
	"context"
	"event-composer-backend/factory"
	"event-composer-backend/handler"
	"event-composer-backend/healthcheck"
	"event-composer-backend/middleware"
	"event-composer-backend/response"
	"event-composer-backend/wizard"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Router returns the router for all the API handler.
func Router(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	f := factory.NewFactory()
	wizardService := wizard.NewWizard(f.Store(ctx), f.Upstream(ctx))

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	wizardRouter := baseRouter.PathPrefix("/wizard").Subrouter()
	wizardRouter.HandleFunc("", handler.WizardState(wizardService)).Methods(http.MethodGet)
	wizardRouter.HandleFunc("/back", handler.Back(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/details", handler.SaveDetails(wizardService)).Methods(http.MethodPut)
	wizardRouter.HandleFunc("/settings", handler.SaveSettings(wizardService)).Methods(http.MethodPut)

	wizardRouter.HandleFunc("/trainers", handler.AddTrainer(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/trainers/continue", handler.ContinueTrainers(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/trainers/{trainerID}", handler.RemoveTrainer(wizardService)).Methods(http.MethodDelete)

	wizardRouter.HandleFunc("/banner", handler.UploadBanner(wizardService)).Methods(http.MethodPut)
	wizardRouter.HandleFunc("/banner", handler.RemoveBanner(wizardService)).Methods(http.MethodDelete)
	wizardRouter.HandleFunc("/banner/continue", handler.ContinueBanner(wizardService)).Methods(http.MethodPost)

	wizardRouter.HandleFunc("/event-type", handler.SetEventType(wizardService)).Methods(http.MethodPut)
	wizardRouter.HandleFunc("/tickets", handler.AddTicket(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/tickets/continue", handler.ContinueTicketing(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/tickets/{ticketID}", handler.RemoveTicket(wizardService)).Methods(http.MethodDelete)

	wizardRouter.HandleFunc("/features", handler.Features(wizardService)).Methods(http.MethodGet)
	wizardRouter.HandleFunc("/publish", handler.Publish(wizardService)).Methods(http.MethodPost)
	wizardRouter.HandleFunc("/discard", handler.Discard(wizardService)).Methods(http.MethodPost)

	return r
}
