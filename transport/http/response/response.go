package response

import (
	"encoding/json"
	"net/http"

	"hotel/config"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Data[T any] struct {
	Status string `json:"status"`
	Data   *T     `json:"data,omitempty"`
}

type Error struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WithMessage sends a success response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Status: constant.ResponseStatusSuccess, Message: message})
}

// WithJSON sends a success response wrapping payload under data
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Status: constant.ResponseStatusSuccess, Data: &jsonPayload})
}

// WithNoContent sends an empty 204 response
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError maps err to its status code. Errors that are not a failure.Failure become a
// generic 500 whose detail is hidden in production.
func WithError(writer http.ResponseWriter, err error) {
	fail, ok := failure.As(err)
	if !ok {
		logger.ErrorWithStack(err)

		payload := Error{Status: constant.ResponseStatusError, Message: constant.ResponseErrorUnexpected}
		if config.Get().Server.Env != constant.ServerEnvProduction {
			payload.Detail = err.Error()
		}

		response(writer, http.StatusInternalServerError, payload)

		return
	}

	response(writer, fail.Code, Error{Status: constant.ResponseStatusError, Message: fail.Message, Detail: fail.Detail()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	withStatusError(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	withStatusError(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	withStatusError(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func withStatusError(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Error{Status: constant.ResponseStatusError, Message: message})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
