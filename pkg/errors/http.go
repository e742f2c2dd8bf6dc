package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPStatus converts an error code into an HTTP status code.
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// ToHTTPError converts err into an echo HTTP error.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	if code := CodeOf(err); code != "" {
		return echo.NewHTTPError(ToHTTPStatus(code), err.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
