package handlers

import (
	"errors"
	"log"

	"github.com/Devjv2007/ecommerce-apple/internal/shipping"

	"github.com/gofiber/fiber/v2"
)

type ShippingHandler struct {
	Quoter *shipping.Quoter
}

func NewShippingHandler(quoter *shipping.Quoter) *ShippingHandler {
	return &ShippingHandler{Quoter: quoter}
}

type ShippingQuoteRequest struct {
	CEP string `json:"cep"`
}

// CalculateShipping - POST /api/frete/calcular
func (h *ShippingHandler) CalculateShipping(c *fiber.Ctx) error {
	var req ShippingQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	quote, err := h.Quoter.GetQuote(c.UserContext(), req.CEP)
	if err != nil {
		switch {
		case errors.Is(err, shipping.ErrInvalidCEP):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Digite um CEP válido com 8 dígitos"})
		case errors.Is(err, shipping.ErrCEPNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CEP inválido"})
		default:
			log.Printf("CEP lookup failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Erro ao buscar CEP"})
		}
	}

	return c.JSON(quote)
}
