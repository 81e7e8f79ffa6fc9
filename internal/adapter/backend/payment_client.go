package backend

import (
	"context"
	"net/http"
)

type paymentStatusEnvelope struct {
	PaymentStatus string `json:"paymentStatus"`
}

// Status reports the payment state of a checkout session, e.g. "paid".
func (c *Client) Status(ctx context.Context, sessionID string) (string, error) {
	var envelope paymentStatusEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/check-payment-status/"+sessionID, nil, &envelope); err != nil {
		return "", err
	}
	return envelope.PaymentStatus, nil
}
