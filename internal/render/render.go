// Package render writes result envelopes as HTTP responses.
package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/validation"
	"github.com/go-petr/pet-budget/pkg/errorspkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

// ErrBadRequest is returned for bodies and parameters that cannot be decoded.
var ErrBadRequest = errors.New("invalid request")

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	var ve *domain.ValidationError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingOwner):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCategoryAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// Result writes res with okStatus on success or with the status of its cause.
// Unexpected errors are logged and replaced by errorspkg.ErrInternal.
func Result[T any](gctx *gin.Context, okStatus int, res web.Result[T]) {
	if res.Success {
		gctx.JSON(okStatus, res)
		return
	}

	status := StatusOf(res.Cause)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(res.Cause).Send()
		res.Error = errorspkg.ErrInternal.Error()
	}

	gctx.JSON(status, res)
}

// Error writes a failed envelope for err.
func Error(gctx *gin.Context, err error) {
	Result(gctx, http.StatusOK, web.Error(err))
}

// BindError answers a request whose input could not be bound.
func BindError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Error(gctx, domain.NewValidationError(validation.Messages(ve)...))
		return
	}

	Error(gctx, ErrBadRequest)
}
