package gateway

import (
	"context"
	"net/http"

	"fitsync/pkg/models"
)

// IdempotencyHeader carries the client-generated token that lets the backend
// deduplicate a double-submitted bill creation.
const IdempotencyHeader = "X-Idempotency-Key"

// ListBills fetches the full bill collection.
func (c *Client) ListBills(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	if err := c.get(ctx, "ListBills", "/billing", nil, &bills); err != nil {
		return nil, err
	}
	for i := range bills {
		bills[i].Normalize()
	}
	return bills, nil
}

// CreateBill creates a bill and returns the persisted record with its assigned
// id. The idempotency key must be freshly generated per staff submission, not
// per retry, so a duplicate submit replays the first result instead of
// creating a second bill.
func (c *Client) CreateBill(ctx context.Context, input models.BillInput, idempotencyKey string) (models.Bill, error) {
	req := request{
		op:     "CreateBill",
		method: http.MethodPost,
		path:   "/billing",
		body:   input,
	}
	if idempotencyKey != "" {
		req.header = http.Header{IdempotencyHeader: []string{idempotencyKey}}
	}

	var bill models.Bill
	if err := c.do(ctx, req, &bill); err != nil {
		return models.Bill{}, err
	}
	bill.Normalize()
	return bill, nil
}

// UpdateBill applies a status transition and returns the updated record.
func (c *Client) UpdateBill(ctx context.Context, id string, update models.BillUpdate) (models.Bill, error) {
	var bill models.Bill
	if err := c.put(ctx, "UpdateBill", "/billing/"+id, update, &bill); err != nil {
		return models.Bill{}, err
	}
	bill.Normalize()
	return bill, nil
}

// GenerateInvoice asks the backend to render the invoice projection for a bill.
func (c *Client) GenerateInvoice(ctx context.Context, id string) (models.Invoice, error) {
	var resp struct {
		Invoice models.Invoice `json:"invoice"`
	}
	if err := c.post(ctx, "GenerateInvoice", "/billing/generate-invoice/"+id, nil, &resp); err != nil {
		return models.Invoice{}, err
	}
	return resp.Invoice, nil
}

// SendReminder triggers a payment reminder email to the billed member and
// returns the backend's confirmation message. Callers must obtain explicit
// operator confirmation before invoking this.
func (c *Client) SendReminder(ctx context.Context, id string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "SendReminder", "/billing/send-reminder/"+id, nil, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "Reminder sent successfully"
	}
	return resp.Message, nil
}
