package handler

import (
	"event-composer-backend/logger"
	"event-composer-backend/response"
	"event-composer-backend/wizard"
	"net/http"
)

func Publish(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		receipt, err := service.Publish(ctx)
		if err != nil {
			logger.Errorf(ctx, "publish: unable to publish event: %+v", err)
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: receipt},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func Discard(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		service.Discard(ctx)

		_, d := service.State(ctx)
		response.SuccessResponse{
			Data:       &response.Data{Draft: d},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
