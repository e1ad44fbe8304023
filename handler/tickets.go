package handler

import (
	"encoding/json"
	"event-composer-backend/logger"
	"event-composer-backend/model"
	"event-composer-backend/response"
	"event-composer-backend/wizard"
	"net/http"

	"github.com/gorilla/mux"
)

func SetEventType(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.EventTypeRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "setEventType: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := service.SetEventType(ctx, req.Data.EventType); err != nil {
			logger.Errorf(ctx, "setEventType: unable to set event type: %+v", err)
			sendError(ctx, w, err)
			return
		}

		_, d := service.State(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Draft: d},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func AddTicket(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.TicketRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "addTicket: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		ticket, err := service.AddTicket(ctx, req.Data.Ticket)
		if err != nil {
			logger.Errorf(ctx, "addTicket: unable to add ticket: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Ticket: ticket},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func RemoveTicket(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)

		if err := service.RemoveTicket(ctx, vars["ticketID"]); err != nil {
			logger.Errorf(ctx, "removeTicket: unable to remove ticket: %+v", err)
			sendError(ctx, w, err)
			return
		}

		_, d := service.State(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Draft: d},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func ContinueTicketing(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := service.ContinueTicketing(ctx); err != nil {
			logger.Errorf(ctx, "continueTicketing: unable to advance: %+v", err)
			sendError(ctx, w, err)
			return
		}

		state, d := service.State(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Wizard: state, Draft: d},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func Features(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		flags := service.Features(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Features: &flags},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
