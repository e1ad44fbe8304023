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

func AddTrainer(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.TrainerRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "addTrainer: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		trainer, err := service.AddTrainer(ctx, req.Data.Trainer)
		if err != nil {
			logger.Errorf(ctx, "addTrainer: unable to add trainer: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Trainer: trainer},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func RemoveTrainer(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)

		if err := service.RemoveTrainer(ctx, vars["trainerID"]); err != nil {
			logger.Errorf(ctx, "removeTrainer: unable to remove trainer: %+v", err)
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

func ContinueTrainers(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := service.ContinueTrainers(ctx); err != nil {
			logger.Errorf(ctx, "continueTrainers: unable to advance: %+v", err)
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
