package burgerapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burger/internal/adapters/out/burgerapi"
	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ingredientsBody = `{
  "success": true,
  "data": [
    {
      "_id": "643d69a5c3f7b9001cfa093c",
      "name": "Краторная булка N-200i",
      "type": "bun",
      "proteins": 80,
      "fat": 24,
      "carbohydrates": 53,
      "calories": 420,
      "price": 1255,
      "image": "https://code.s3.yandex.net/react/code/bun-02.png",
      "image_mobile": "https://code.s3.yandex.net/react/code/bun-02-mobile.png",
      "image_large": "https://code.s3.yandex.net/react/code/bun-02-large.png",
      "__v": 0
    },
    {
      "_id": "643d69a5c3f7b9001cfa0941",
      "name": "Биокотлета из марсианской Магнолии",
      "type": "main",
      "proteins": 420,
      "fat": 142,
      "carbohydrates": 242,
      "calories": 4242,
      "price": 424.5,
      "image": "https://code.s3.yandex.net/react/code/meat-01.png"
    },
    {
      "_id": "643d69a5c3f7b9001cfa0942",
      "name": "Соус Spicy-X",
      "type": "sauce",
      "proteins": 30,
      "fat": 20,
      "carbohydrates": 40,
      "calories": 30,
      "price": 90
    }
  ]
}`

func newServer(t *testing.T, handler http.HandlerFunc) *burgerapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return burgerapi.New(burgerapi.Config{
		BaseURL: srv.URL + "/api/",
		Timeout: time.Second,
		Token: func(ctx context.Context) string {
			if token, ok := ctx.Value(tokenKey{}).(string); ok {
				return token
			}
			return ""
		},
	})
}

type tokenKey struct{}

func TestClient_FetchParts(t *testing.T) {
	t.Run("should parse the catalog", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/ingredients", r.URL.Path)
			_, _ = w.Write([]byte(ingredientsBody))
		})

		parts, err := client.FetchParts(t.Context())

		require.NoError(t, err)
		require.Len(t, parts, 3)

		bun := parts[0]
		assert.Equal(t, "643d69a5c3f7b9001cfa093c", bun.ID())
		assert.Equal(t, "Краторная булка N-200i", bun.Name())
		assert.Equal(t, catalog.Base, bun.Category())
		assert.True(t, decimal.NewFromInt(1255).Equal(bun.Price().Decimal()))
		assert.Equal(t, catalog.Nutrition{Calories: 420, Proteins: 80, Fat: 24, Carbohydrates: 53}, bun.Nutrition())
		assert.Equal(t, "https://code.s3.yandex.net/react/code/bun-02-large.png", bun.Images().Large)

		assert.Equal(t, catalog.FillingSolid, parts[1].Category())
		assert.Equal(t, "424.5", parts[1].Price().Decimal().String())
		assert.Equal(t, catalog.FillingLiquid, parts[2].Category())
		assert.Empty(t, parts[2].Images().Regular)
	})

	t.Run("should report server errors as catalog fetch errors", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"message":"internal"}`))
		})

		_, err := client.FetchParts(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("should reject success false", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false}`))
		})

		_, err := client.FetchParts(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := client.FetchParts(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
	})

	t.Run("should reject an unknown ingredient type", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"x","name":"Drink","type":"drink","price":1}]}`))
		})

		_, err := client.FetchParts(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
		assert.Contains(t, err.Error(), "drink")
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"x","name":"Bun","type":"bun","price":-1}]}`))
		})

		_, err := client.FetchParts(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
	})

	t.Run("should report transport failures", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := burgerapi.New(burgerapi.Config{BaseURL: srv.URL})

		_, err := client.FetchParts(t.Context())

		var fetchErr *ports.CatalogFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Error(t, fetchErr.Cause)
	})
}

func TestClient_PlaceOrder(t *testing.T) {
	ids := []string{"643d69a5c3f7b9001cfa093c", "643d69a5c3f7b9001cfa0941", "643d69a5c3f7b9001cfa093c"}

	t.Run("should send ids with the caller token", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

			var payload struct {
				Ingredients []string `json:"ingredients"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, ids, payload.Ingredients)

			_, _ = w.Write([]byte(`{"success":true,"name":"Краторный бургер","order":{"number":4217}}`))
		})
		ctx := context.WithValue(t.Context(), tokenKey{}, "Bearer access-token")

		placed, err := client.PlaceOrder(ctx, ids)

		require.NoError(t, err)
		assert.Equal(t, ports.PlacedOrder{Number: 4217, Name: "Краторный бургер"}, placed)
	})

	t.Run("should omit Authorization without a token", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"success":true,"order":{"number":1}}`))
		})

		_, err := client.PlaceOrder(t.Context(), ids)

		require.NoError(t, err)
	})

	t.Run("should carry the backend message on rejection", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"success":false,"message":"jwt expired"}`))
		})

		_, err := client.PlaceOrder(t.Context(), ids)

		var orderErr *ports.OrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, "jwt expired", orderErr.Message)
		assert.ErrorIs(t, err, ports.ErrOrder)
	})

	t.Run("should leave the message empty on transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := burgerapi.New(burgerapi.Config{BaseURL: srv.URL})

		_, err := client.PlaceOrder(t.Context(), ids)

		var orderErr *ports.OrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Empty(t, orderErr.Message)
	})

	t.Run("should reject a response without an order number", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"name":"x"}`))
		})

		_, err := client.PlaceOrder(t.Context(), ids)

		require.ErrorIs(t, err, ports.ErrOrder)
	})
}
