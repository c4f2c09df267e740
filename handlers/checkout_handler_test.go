package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Devjv2007/ecommerce-apple/internal/cart"
	"github.com/Devjv2007/ecommerce-apple/internal/checkout"
	"github.com/Devjv2007/ecommerce-apple/internal/payment"
	"github.com/Devjv2007/ecommerce-apple/internal/ws"
	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderStore records created orders without a database.
type memoryOrderStore struct {
	orders []*models.Order
}

func (m *memoryOrderStore) Create(ctx context.Context, order *models.Order) error {
	order.ID = uint(len(m.orders) + 1)
	m.orders = append(m.orders, order)
	return nil
}

func checkoutApp(t *testing.T, store cart.Store, orders *memoryOrderStore) *fiber.App {
	t.Helper()

	sim := payment.NewSimulator(payment.WithDelays(5*time.Millisecond, 5*time.Millisecond))
	hub := ws.NewHub()
	go hub.Run()
	handler := NewCheckoutHandler(checkout.NewService(store, sim, orders), hub)

	app := fiber.New()
	app.Post("/api/checkout", utils.AuthMiddleware, handler.Checkout)
	return app
}

func checkoutBody() string {
	return `{
		"metodo_pagamento": "credit",
		"cartao": {"number": "4111 1111 1111 1111", "name": "JOSE DA SILVA", "expiry": "12/28", "cvv": "123"},
		"endereco": {"cep": "01310-100", "logradouro": "Avenida Paulista", "bairro": "Bela Vista", "localidade": "São Paulo", "uf": "SP"},
		"frete": {"transportadora": "Correios PAC", "valor": 25.90, "prazo": "2 dias úteis"}
	}`
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := cart.NewMemoryStore()
	ctx := context.Background()
	userCart, err := cart.Load(ctx, store, 7)
	require.NoError(t, err)
	product := cart.ProductSnapshot{ID: 1, Name: "iPhone 15 Pro", Price: 1000.00}
	require.NoError(t, userCart.Add(ctx, product))
	require.NoError(t, userCart.Add(ctx, product))

	orders := &memoryOrderStore{}
	app := checkoutApp(t, store, orders)

	token, err := utils.GenerateToken(models.User{ID: 7, Name: "Jose", Email: "jose@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(checkoutBody()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	// The handler blocks until the simulated payment completes, then
	// answers with the persisted order.
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Order models.Order `json:"pedido"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(7), body.Order.UserID)
	assert.Equal(t, models.OrderStatusProcessing, body.Order.Status)
	assert.InDelta(t, 2025.90, body.Order.Total, 0.001)

	require.Len(t, orders.orders, 1)

	reloaded, err := cart.Load(context.Background(), store, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.TotalItems())
}

func TestCheckoutInvalidCardRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := cart.NewMemoryStore()
	ctx := context.Background()
	userCart, err := cart.Load(ctx, store, 3)
	require.NoError(t, err)
	require.NoError(t, userCart.Add(ctx, cart.ProductSnapshot{ID: 1, Name: "iPhone 15 Pro", Price: 1000.00}))

	orders := &memoryOrderStore{}
	app := checkoutApp(t, store, orders)

	token, err := utils.GenerateToken(models.User{ID: 3, Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)

	body := strings.Replace(checkoutBody(), `"cvv": "123"`, `"cvv": "1"`, 1)
	req := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Nothing persisted, cart untouched
	assert.Empty(t, orders.orders)
	reloaded, err := cart.Load(context.Background(), store, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalItems())
}
