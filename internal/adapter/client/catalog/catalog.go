package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vcstore/orderservice/internal/adapter/config"
	"github.com/vcstore/orderservice/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Client talks to the remote catalog service. Every failure mode of a
// single lookup degrades to an absent result and every failure of the
// listing degrades to an empty list; the caller never sees a transport
// error from here.
type Client struct {
	logger *zap.Logger
	host   string
	http   *http.Client
}

func NewClient(cfg *config.Catalog, log *zap.Logger) (*Client, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		host:   cfg.HostString,
		logger: log,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

type productResponse struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int32   `json:"stockQuantity"`
	CategoryName  string  `json:"categoryName"`
}

func (c *Client) ProductByID(ctx context.Context, id uint64) (*domain.Product, bool) {
	requestStr := fmt.Sprintf("http://%s/api/products/%d", c.host, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		c.logger.Warn("catalog request build failed", zap.String("url", requestStr), zap.Error(err))
		return nil, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog unreachable, degrading to absent",
			zap.Uint64("product", id), zap.Error(err))
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("catalog lookup returned non-OK status",
			zap.Uint64("product", id), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	var result productResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("catalog response decode failed", zap.Uint64("product", id), zap.Error(err))
		return nil, false
	}

	product, err := toProduct(result)
	if err != nil {
		c.logger.Warn("catalog response conversion failed", zap.Uint64("product", id), zap.Error(err))
		return nil, false
	}

	return product, true
}

func (c *Client) Products(ctx context.Context) []domain.Product {
	requestStr := "http://" + c.host + "/api/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		c.logger.Warn("catalog request build failed", zap.String("url", requestStr), zap.Error(err))
		return []domain.Product{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog unreachable, degrading to empty list", zap.Error(err))
		return []domain.Product{}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("catalog listing returned non-OK status", zap.Int("status", resp.StatusCode))
		return []domain.Product{}
	}

	var results []productResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("catalog listing decode failed", zap.Error(err))
		return []domain.Product{}
	}

	list := make([]domain.Product, 0, len(results))
	for _, r := range results {
		product, err := toProduct(r)
		if err != nil {
			c.logger.Warn("catalog listing conversion failed", zap.Uint64("product", r.ID), zap.Error(err))
			continue
		}
		list = append(list, *product)
	}

	return list
}

func toProduct(r productResponse) (*domain.Product, error) {
	price, err := decimal.NewFromFloat64(r.Price)
	if err != nil {
		return nil, fmt.Errorf("error on price decode: %w", err)
	}
	return &domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         price,
		StockQuantity: r.StockQuantity,
		CategoryName:  r.CategoryName,
	}, nil
}
