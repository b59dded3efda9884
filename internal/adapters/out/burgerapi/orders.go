package burgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"burger/internal/core/ports"
)

type placeOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

// PlaceOrder posts the ingredient ids to /orders. Rejections carry the
// backend's message when it sent one; transport failures carry none.
func (c *Client) PlaceOrder(ctx context.Context, ingredientIDs []string) (ports.PlacedOrder, error) {
	payload, err := json.Marshal(placeOrderRequest{Ingredients: ingredientIDs})
	if err != nil {
		return ports.PlacedOrder{}, ports.NewOrderError("", fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return ports.PlacedOrder{}, ports.NewOrderError("", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json;charset=utf-8")
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", token)
	}

	status, body, err := c.do(req)
	if err != nil {
		return ports.PlacedOrder{}, ports.NewOrderError("", err)
	}
	if !isOK(status, body) {
		return ports.PlacedOrder{}, ports.NewOrderError(
			body.Get("message").String(),
			fmt.Errorf("request failed with status %d", status),
		)
	}

	number := body.Get("order.number").Int()
	if number <= 0 {
		return ports.PlacedOrder{}, ports.NewOrderError("", errors.New("response has no order number"))
	}

	return ports.PlacedOrder{
		Number: int(number),
		Name:   body.Get("name").String(),
	}, nil
}
