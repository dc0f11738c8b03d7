package http

import (
	"errors"
	"net/http"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:          http.StatusInternalServerError,
	domain.ErrOrderInconsistent: http.StatusInternalServerError,

	domain.ErrDataNotFound:     http.StatusNotFound,
	domain.ErrOrderNotFound:    http.StatusNotFound,
	domain.ErrCustomerNotFound: http.StatusNotFound,
	domain.ErrProductNotFound:  http.StatusNotFound,

	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrBadRequest:      http.StatusBadRequest,
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) statusForError(err error) int {
	if statusCode, ok := errorStatusMap[err]; ok {
		return statusCode
	}
	for target, statusCode := range errorStatusMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := h.statusForError(err)
	if statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleMutationError reports resolution failures of a mutation as a
// client error, the way the gateway-facing API always has.
func (h *Handler) handleMutationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		ctx.Status(http.StatusBadRequest)
	default:
		h.handleError(ctx, err)
	}
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(http.StatusOK, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
