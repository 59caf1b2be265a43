package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ritikraj2425/mergeflow/internal/domain"
)

func mapDomainErrorToStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrorCodeInvalidInput:
		return http.StatusBadRequest
	case domain.ErrorCodeNotFound:
		return http.StatusNotFound
	case domain.ErrorCodeUsernameTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newAPIError(code ErrorResponseErrorCode, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// writeUseCaseError отдаёт доменную ошибку с её кодом, всё остальное как INTERNAL.
func writeUseCaseError(ctx echo.Context, err error) error {
	var derr *domain.DomainError
	if errors.As(err, &derr) {
		status := mapDomainErrorToStatus(derr.Code)
		resp := newAPIError(ErrorResponseErrorCode(derr.Code), derr.Error())
		return ctx.JSON(status, resp)
	}

	resp := newAPIError(INTERNAL, "internal server error")
	return ctx.JSON(http.StatusInternalServerError, resp)
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, newAPIError(BADREQUEST, msg))
}
