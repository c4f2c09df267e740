package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/Devjv2007/ecommerce-apple/internal/checkout"
	"github.com/Devjv2007/ecommerce-apple/internal/payment"
	"github.com/Devjv2007/ecommerce-apple/internal/shipping"
	"github.com/Devjv2007/ecommerce-apple/internal/ws"
	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CheckoutHandler struct {
	Service *checkout.Service
	Hub     *ws.Hub
}

func NewCheckoutHandler(service *checkout.Service, hub *ws.Hub) *CheckoutHandler {
	return &CheckoutHandler{Service: service, Hub: hub}
}

// GormOrderStore adapts gorm to the checkout OrderStore port.
type GormOrderStore struct {
	DB *gorm.DB
}

func (s GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.DB.WithContext(ctx).Create(order).Error
}

// CheckoutRequest is the full purchase confirmation: payment choice,
// resolved address and the shipping option picked from the quote.
type CheckoutRequest struct {
	Method  payment.Method       `json:"metodo_pagamento"`
	Card    *payment.CardDetails `json:"cartao"`
	Address shipping.Address     `json:"endereco"`
	Option  shipping.Option      `json:"frete"`
}

// Checkout - POST /api/checkout
//
// Blocks for the simulated processing delay before answering. The
// fasthttp request context cancels the pending payment on server
// shutdown; a client that drops the connection mid-delay is not
// surfaced by the HTTP layer, so that request runs to completion.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := utils.UserIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sessão inválida"})
	}

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	if req.Option.Carrier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selecione uma opção de frete"})
	}
	if req.Address.CEP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe o endereço de entrega"})
	}

	order, err := h.Service.Confirm(c.Context(), checkout.Request{
		UserID:  userID,
		Method:  req.Method,
		Card:    req.Card,
		Address: req.Address,
		Option:  req.Option,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Carrinho vazio"})
		case errors.Is(err, payment.ErrInvalidMethod),
			errors.Is(err, payment.ErrCardRequired),
			errors.Is(err, payment.ErrInvalidCardNumber),
			errors.Is(err, payment.ErrInvalidCardName),
			errors.Is(err, payment.ErrInvalidExpiry),
			errors.Is(err, payment.ErrInvalidCVV):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, context.Canceled):
			// Server shutting down mid-payment; nothing was persisted
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{"error": "Pagamento cancelado"})
		default:
			log.Printf("Checkout failed for user %d: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao processar pedido"})
		}
	}

	if req.Method.IsCard() && req.Card != nil {
		log.Printf("Order %d paid by %s (%s)", order.ID, req.Method, payment.DetectBrand(req.Card.Number))
	}
	h.Hub.OrderCreated(order)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pedido": order})
}
