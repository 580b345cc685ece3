package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// FetchOrders returns the server-authored orders for the mirrored clients,
// lines included.
func (c *Client) FetchOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.get(ctx, "fetch orders", "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchOrderHistory returns a page of one client's orders.
func (c *Client) FetchOrderHistory(ctx context.Context, clientID int, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("per_page", strconv.Itoa(params.PerPage))

	var result pagination.PaginatedResult[entity.Order]
	path := "/clients/" + strconv.Itoa(clientID) + "/orders"
	if err := c.get(ctx, "fetch order history", path, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchOrderByCSID returns one order with its lines.
func (c *Client) FetchOrderByCSID(ctx context.Context, csid string) (*entity.Order, error) {
	var order entity.Order
	if err := c.get(ctx, "fetch order", "/orders/"+url.PathEscape(csid), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SubmitResult is the server's acknowledgement of a pushed batch
type SubmitResult struct {
	AcceptedCSIDs []string `json:"accepted_csids"`
}

// SubmitOrders pushes locally authored orders and returns the csids the
// server acknowledged. The batch carries an idempotency key so a retried
// push after a lost response does not duplicate orders server-side.
func (c *Client) SubmitOrders(ctx context.Context, orders []entity.Order) ([]string, error) {
	headers := map[string]string{
		"Idempotency-Key": uuid.New().String(),
	}

	var result SubmitResult
	if err := c.post(ctx, "submit orders", "/orders/batch", orders, headers, &result); err != nil {
		return nil, err
	}
	return result.AcceptedCSIDs, nil
}
