package http

import (
	"errors"
	"net/http"

	"wholesale/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP status codes in one place so every
// handler reports failures the same way.
//
//   - not found                      -> 404
//   - validation errors              -> 400
//   - invalid lifecycle transition   -> 409
//   - business constraint violation  -> 409
//   - insufficient stock             -> 422
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConstraintViolation):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
