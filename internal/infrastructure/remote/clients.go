package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// FetchClients returns every client account assigned to this device.
func (c *Client) FetchClients(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	if err := c.get(ctx, "fetch clients", "/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// SearchClients searches client accounts by name.
func (c *Client) SearchClients(ctx context.Context, term string) ([]entity.Client, error) {
	query := url.Values{}
	query.Set("name", term)

	var clients []entity.Client
	if err := c.get(ctx, "search clients", "/clients/search", query, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// FetchClientSummary returns the account view for one client, outstanding
// invoices included.
func (c *Client) FetchClientSummary(ctx context.Context, clientID int) (*entity.ClientSummary, error) {
	var summary entity.ClientSummary
	path := "/clients/" + strconv.Itoa(clientID) + "/summary"
	if err := c.get(ctx, "fetch client summary", path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FetchInvoices returns the outstanding invoices for every mirrored client.
func (c *Client) FetchInvoices(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := c.get(ctx, "fetch invoices", "/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FetchDeliveryPoints returns every delivery point of the mirrored clients.
func (c *Client) FetchDeliveryPoints(ctx context.Context) ([]entity.DeliveryPoint, error) {
	var points []entity.DeliveryPoint
	if err := c.get(ctx, "fetch delivery points", "/delivery-points", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// FetchDeliveryPointsByClient returns one client's delivery points.
func (c *Client) FetchDeliveryPointsByClient(ctx context.Context, clientID int) ([]entity.DeliveryPoint, error) {
	var points []entity.DeliveryPoint
	path := "/clients/" + strconv.Itoa(clientID) + "/delivery-points"
	if err := c.get(ctx, "fetch client delivery points", path, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}
