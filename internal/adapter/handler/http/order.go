package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/vcstore/orderservice/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type OrderLineResp struct {
	ID          uint64      `json:"id"`
	ProductID   uint64      `json:"productId"`
	ProductName string      `json:"productName"`
	Price       jsonDecimal `json:"price"`
	Quantity    int32       `json:"quantity"`
}

type OrderResp struct {
	ID           uint64          `json:"id"`
	CustomerID   uint64          `json:"customerId"`
	CustomerName string          `json:"customerName,omitempty"`
	OrderDate    time.Time       `json:"orderDate"`
	Status       string          `json:"status"`
	TotalAmount  jsonDecimal     `json:"totalAmount"`
	Items        []OrderLineResp `json:"items"`
}

type OrderLineRequest struct {
	ProductID uint64 `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type OrderRequest struct {
	CustomerID  uint64             `json:"customerId"`
	OrderDate   *time.Time         `json:"orderDate"`
	Status      string             `json:"status"`
	TotalAmount *float64           `json:"totalAmount"`
	Items       []OrderLineRequest `json:"items"`
}

func orderToResp(order *domain.Order) OrderResp {
	resp := OrderResp{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate,
		Status:      string(order.Status),
		TotalAmount: jsonDecimal(order.TotalAmount),
		Items:       make([]OrderLineResp, 0, len(order.Lines)),
	}
	if order.Customer != nil {
		resp.CustomerName = order.Customer.FullName()
	}
	for _, line := range order.Lines {
		resp.Items = append(resp.Items, OrderLineResp{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       jsonDecimal(line.Price),
			Quantity:    line.Quantity,
		})
	}
	return resp
}

func (oh *OrderHandler) toDraft(ctx *gin.Context, req *OrderRequest) (*domain.OrderDraft, bool) {
	draft := &domain.OrderDraft{
		CustomerID: req.CustomerID,
		Status:     domain.OrderStatus(req.Status),
	}
	if req.OrderDate != nil {
		draft.OrderDate = *req.OrderDate
	}
	if req.TotalAmount != nil {
		total, err := decimal.NewFromFloat64(*req.TotalAmount)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return nil, false
		}
		draft.TotalAmount = &total
	}
	for _, item := range req.Items {
		draft.Lines = append(draft.Lines, domain.LineDraft{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return draft, true
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := OrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	draft, ok := oh.toDraft(ctx, &req)
	if !ok {
		return
	}

	order, err := oh.service.ComposeOrder(ctx, draft)
	if err != nil {
		oh.handleMutationError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResp(order))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResp(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := domain.OrderFilter{Size: 10}

	if s := ctx.Query("startDate"); s != "" {
		start, err := time.Parse(time.RFC3339, s)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		filter.StartDate = &start
	}
	if s := ctx.Query("endDate"); s != "" {
		end, err := time.Parse(time.RFC3339, s)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		filter.EndDate = &end
	}
	if s := ctx.Query("customerId"); s != "" {
		customerID, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		filter.CustomerID = &customerID
	}
	if s := ctx.Query("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 0 {
			oh.handleValidationError(ctx, err)
			return
		}
		filter.Page = page
	}
	if s := ctx.Query("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size <= 0 {
			oh.handleValidationError(ctx, err)
			return
		}
		filter.Size = size
	}

	list, err := oh.service.ListOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, order := range list {
		result = append(result, orderToResp(order))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := OrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	draft, ok := oh.toDraft(ctx, &req)
	if !ok {
		return
	}

	order, err := oh.service.UpdateOrder(ctx, orderID, draft)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResp(order))
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.DeleteOrder(ctx, orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) AddProduct(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	productID, err := strconv.ParseUint(ctx.Query("productId"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	quantity, err := strconv.ParseInt(ctx.Query("quantity"), 10, 32)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.AddProduct(ctx, orderID, productID, int32(quantity))
	if err != nil {
		oh.handleMutationError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderToResp(order))
}

func (oh *OrderHandler) RemoveProduct(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	productID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if _, err := oh.service.RemoveProduct(ctx, orderID, productID); err != nil {
		oh.handleMutationError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
