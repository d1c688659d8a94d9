package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogctl/internal/core/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, Options{RateLimit: 1000})
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Authorization"), "login carries no token")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.co", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	})

	creds, err := client.Login(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, Credentials{Token: "tok-123", Email: "a@b.co"}, creds)
}

func TestClient_LoginMissingToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := client.Login(context.Background(), "a@b.co")
	assert.ErrorContains(t, err, "missing token")
}

func TestClient_ListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "lamp", r.URL.Query().Get("search"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"products":   []map[string]any{{"id": 1, "name": "Desk Lamp"}},
			"totalCount": 41,
		})
	})

	page, err := client.ListProducts(context.Background(), Credentials{Token: "tok"}, ListQuery{
		Page:     3,
		PageSize: 10,
		Search:   "lamp",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Desk Lamp", page.Items[0].Name)
	assert.Equal(t, 41, page.TotalCount)
}

func TestClient_MissingTokenShortCircuits(t *testing.T) {
	// The handler fails the test if it is ever reached.
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request may be issued without a token")
	})

	ctx := context.Background()
	noCreds := Credentials{}

	_, err := client.ListProducts(ctx, noCreds, ListQuery{})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = client.GetProduct(ctx, noCreds, 1)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = client.CreateProduct(ctx, noCreds, catalog.Draft{})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = client.UpdateProduct(ctx, noCreds, 1, catalog.Draft{})
	assert.ErrorIs(t, err, ErrMissingToken)

	err = client.DeleteProduct(ctx, noCreds, 1)
	assert.ErrorIs(t, err, ErrMissingToken)

	assert.True(t, IsUnauthorized(err))
}

func TestClient_GetProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Desk Lamp", "price": 19.99})
	})

	product, err := client.GetProduct(context.Background(), Credentials{Token: "tok"}, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, 19.99, product.Price)
}

func TestClient_CreateProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)

		var draft catalog.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Desk Lamp", draft.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "name": draft.Name})
	})

	product, err := client.CreateProduct(context.Background(), Credentials{Token: "tok"}, catalog.Draft{
		Name:        "Desk Lamp",
		Description: "A lamp",
		Price:       19.99,
		Category:    "lighting",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
}

func TestClient_DeleteProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DeleteProduct(context.Background(), Credentials{Token: "tok"}, 7)
	assert.NoError(t, err)
}

func TestClient_ErrorBodyParsing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "message field",
			status:  http.StatusNotFound,
			body:    `{"message": "product not found"}`,
			wantMsg: "product not found",
		},
		{
			name:    "error field",
			status:  http.StatusBadRequest,
			body:    `{"error": "name is required"}`,
			wantMsg: "name is required",
		},
		{
			name:    "unparseable body falls back to status",
			status:  http.StatusInternalServerError,
			body:    `<html>oops</html>`,
			wantMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetProduct(context.Background(), Credentials{Token: "tok"}, 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClient_UnauthorizedResponses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message": "token rejected"}`))
		})

		_, err := client.GetProduct(context.Background(), Credentials{Token: "expired"}, 1)
		assert.True(t, IsUnauthorized(err), "status %d must read as unauthorized", status)
	}
}

func TestIsUnauthorized_OtherErrors(t *testing.T) {
	assert.False(t, IsUnauthorized(nil))
	assert.False(t, IsUnauthorized(context.Canceled))
	assert.False(t, IsUnauthorized(&APIError{Status: http.StatusInternalServerError, Message: "oops"}))
}
