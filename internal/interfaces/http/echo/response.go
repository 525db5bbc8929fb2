package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Error *errorBody `json:"error,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, apiResponse{Error: &errorBody{
		Code:    code,
		Message: message,
	}})
}

func badRequestBody(c echo.Context) error {
	return respondError(c, http.StatusBadRequest, "bad_request", "invalid request body")
}
