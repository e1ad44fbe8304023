package response

import (
	"context"
	"encoding/json"
	"event-composer-backend/logger"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	StatusCode  int
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT FOUND",
		Description: description,
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}

func IncompleteStep(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Success:    false,
		Message:    message,
		Status:     "INCOMPLETE_STEP",
	}
}

func TrainerRequired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Success:    false,
		Message:    "Please add at least one trainer to continue",
		Status:     "TRAINER_REQUIRED",
	}
}

func BannerRequired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Success:    false,
		Message:    "Please upload a banner image to continue",
		Status:     "BANNER_REQUIRED",
	}
}

func TicketRequired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Success:    false,
		Message:    "Please add at least one ticket to continue",
		Status:     "TICKET_REQUIRED",
	}
}

func NotAnImage() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Success:    false,
		Message:    "Only image files can be uploaded",
		Status:     "NOT_AN_IMAGE",
	}
}

func TokenExpired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "Session expired, please sign in again",
		Status:     "TOKEN_EXPIRED",
	}
}

func PublishFailed(message string) ErrorResponse {
	if message == "" {
		message = "Sorry, Something went wrong"
	}
	return ErrorResponse{
		StatusCode: http.StatusBadGateway,
		Success:    false,
		Message:    message,
		Status:     "PUBLISH_FAILED",
	}
}
