package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/vcstore/orderservice/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	Handler
	service port.Service
}

func NewCustomerHandler(service port.Service, logger *zap.Logger) (*CustomerHandler, error) {
	return &CustomerHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type CustomerResp struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func customerToResp(customer *domain.Customer) CustomerResp {
	return CustomerResp{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}

func (ch *CustomerHandler) ListCustomers(ctx *gin.Context) {
	list, err := ch.service.ListCustomers(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]CustomerResp, 0, len(list))
	for _, customer := range list {
		result = append(result, customerToResp(customer))
	}

	ch.handleSuccess(ctx, result)
}

func (ch *CustomerHandler) GetCustomer(ctx *gin.Context) {
	customerID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	customer, err := ch.service.GetCustomer(ctx, customerID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, customerToResp(customer))
}

func (ch *CustomerHandler) CreateCustomer(ctx *gin.Context) {
	req := CustomerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	customer := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	saved, err := ch.service.SaveCustomer(ctx, customer)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, customerToResp(saved))
}

func (ch *CustomerHandler) UpdateCustomer(ctx *gin.Context) {
	customerID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := CustomerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	customer := &domain.Customer{
		ID:        customerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	saved, err := ch.service.SaveCustomer(ctx, customer)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, customerToResp(saved))
}

func (ch *CustomerHandler) DeleteCustomer(ctx *gin.Context) {
	customerID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	if err := ch.service.DeleteCustomer(ctx, customerID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
