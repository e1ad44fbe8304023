package handler

import (
	"context"
	"encoding/json"
	"errors"
	"event-composer-backend/logger"
	"event-composer-backend/model"
	"event-composer-backend/response"
	"event-composer-backend/wizard"
	"net/http"
)

func WizardState(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state, d := service.State(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Wizard: state, Draft: d},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func Back(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state, err := service.Back(ctx)
		if err != nil {
			logger.Errorf(ctx, "back: unable to step back: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Wizard: state},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func SaveDetails(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.DetailsRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "saveDetails: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := service.SaveDetails(ctx, req.Data.Details); err != nil {
			logger.Errorf(ctx, "saveDetails: unable to save event details: %+v", err)
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

func SaveSettings(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.EventSettingsRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "saveSettings: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := service.SaveSettings(ctx, req.Data.EventSettings); err != nil {
			logger.Errorf(ctx, "saveSettings: unable to save event settings: %+v", err)
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

// sendError maps a step-validation failure to its own response and
// everything else to the generic one.
func sendError(ctx context.Context, w http.ResponseWriter, err error) {
	var er response.ErrorResponse
	if errors.As(err, &er) {
		er.Send(ctx, w)
		return
	}
	response.SomethingWrong().Send(ctx, w)
}
