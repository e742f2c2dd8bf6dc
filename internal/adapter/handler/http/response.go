package http

import (
	"net/http"

	domainErrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/errors"
	apperrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/errors"
	"github.com/labstack/echo/v4"
)

// errorResponse writes {"success":false,"message","code"} with the status of
// the error's code. Causes are never exposed to the client.
func errorResponse(c echo.Context, err error) error {
	code := apperrors.CodeOf(err)
	if code == "" {
		code = apperrors.ErrInternal
	}
	status := apperrors.ToHTTPStatus(code)

	message := http.StatusText(status)
	var payErr *domainErrors.PaymentError
	var appErr *apperrors.AppError
	switch {
	case apperrors.As(err, &payErr):
		message = payErr.Message
	case apperrors.As(err, &appErr) && status < http.StatusInternalServerError:
		message = appErr.Message()
	}

	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
		"code":    code,
	})
}
