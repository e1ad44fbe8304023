package handler

import (
	"event-composer-backend/logger"
	"event-composer-backend/response"
	"event-composer-backend/wizard"
	"io/ioutil"
	"net/http"
)

const maxBannerBytes = 10 << 20

func UploadBanner(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(maxBannerBytes); err != nil {
			logger.Errorf(ctx, "uploadBanner: error parsing multipart form: %+v", err)
			response.BadRequest("invalid upload", "").Send(ctx, w)
			return
		}

		file, header, err := r.FormFile("bannerImage")
		if err != nil {
			logger.Errorf(ctx, "uploadBanner: missing bannerImage part: %+v", err)
			response.BadRequest("bannerImage file is required", "").Send(ctx, w)
			return
		}
		defer file.Close()

		data, err := ioutil.ReadAll(file)
		if err != nil {
			logger.Errorf(ctx, "uploadBanner: error reading upload: %+v", err)
			response.SomethingWrong().Send(ctx, w)
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}

		if err := service.SetBanner(ctx, mimeType, data); err != nil {
			logger.Errorf(ctx, "uploadBanner: unable to set banner: %+v", err)
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

func RemoveBanner(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := service.RemoveBanner(ctx); err != nil {
			logger.Errorf(ctx, "removeBanner: unable to clear banner: %+v", err)
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

func ContinueBanner(service *wizard.Wizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := service.ContinueBanner(ctx); err != nil {
			logger.Errorf(ctx, "continueBanner: unable to advance: %+v", err)
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
