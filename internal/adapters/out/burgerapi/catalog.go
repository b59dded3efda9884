package burgerapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// FetchParts loads GET /ingredients. Every failure is a *ports.CatalogFetchError,
// including a single malformed entry.
func (c *Client) FetchParts(ctx context.Context) ([]*catalog.Part, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ingredients", nil)
	if err != nil {
		return nil, ports.NewCatalogFetchError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, ports.NewCatalogFetchError(err)
	}
	if !isOK(status, body) {
		return nil, ports.NewCatalogFetchError(fmt.Errorf("request failed: %d %s", status, body.Get("message").String()))
	}

	items := body.Get("data").Array()
	parts := make([]*catalog.Part, 0, len(items))
	for i, item := range items {
		part, partErr := parsePart(item)
		if partErr != nil {
			return nil, ports.NewCatalogFetchError(fmt.Errorf("ingredient %d: %w", i, partErr))
		}
		parts = append(parts, part)
	}

	return parts, nil
}

func parsePart(item gjson.Result) (*catalog.Part, error) {
	category, err := catalog.ParseCategory(item.Get("type").String())
	if err != nil {
		return nil, err
	}

	priceField := item.Get("price")
	if priceField.Type != gjson.Number {
		return nil, errors.New("price is not a number")
	}
	amount, err := decimal.NewFromString(priceField.Raw)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return nil, err
	}

	return catalog.NewPart(
		item.Get("_id").String(),
		item.Get("name").String(),
		category,
		price,
		catalog.Nutrition{
			Calories:      item.Get("calories").Float(),
			Proteins:      item.Get("proteins").Float(),
			Fat:           item.Get("fat").Float(),
			Carbohydrates: item.Get("carbohydrates").Float(),
		},
		catalog.Images{
			Regular: item.Get("image").String(),
			Mobile:  item.Get("image_mobile").String(),
			Large:   item.Get("image_large").String(),
		},
	)
}
