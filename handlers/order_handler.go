package handlers

import (
	"log"
	"strconv"

	"github.com/Devjv2007/ecommerce-apple/internal/ws"
	"github.com/Devjv2007/ecommerce-apple/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB  *gorm.DB
	Hub *ws.Hub
}

func NewOrderHandler(db *gorm.DB, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{DB: db, Hub: hub}
}

// CreateOrderRequest is the payload sent by the storefront after a
// successful payment simulation.
type CreateOrderRequest struct {
	UserID          uint               `json:"usuario_id"`
	Subtotal        float64            `json:"subtotal"`
	ShippingValue   float64            `json:"valor_frete"`
	Total           float64            `json:"total"`
	PaymentMethod   *string            `json:"metodo_pagamento"`
	AddressCEP      string             `json:"endereco_cep"`
	AddressStreet   string             `json:"endereco_logradouro"`
	AddressDistrict string             `json:"endereco_bairro"`
	AddressCity     string             `json:"endereco_cidade"`
	AddressUF       string             `json:"endereco_uf"`
	Carrier         string             `json:"frete_transportadora"`
	Deadline        string             `json:"frete_prazo"`
	Status          models.OrderStatus `json:"status"`
}

// GetUserOrders - GET /api/pedidos/usuario/:id
func (h *OrderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID inválido"})
	}

	orders := make([]models.Order, 0)
	if err := h.DB.Where("usuario_id = ?", userID).Order("data_pedido desc").Find(&orders).Error; err != nil {
		log.Printf("Failed to list orders for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": "Erro ao buscar pedidos"})
	}

	return c.JSON(fiber.Map{"pedidos": orders})
}

// CreateOrder - POST /api/pedidos
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Dados inválidos"})
	}

	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "usuario_id é obrigatório"})
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusProcessing
	}
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Status inválido"})
	}

	order := models.Order{
		UserID:          req.UserID,
		Status:          status,
		Subtotal:        req.Subtotal,
		ShippingValue:   req.ShippingValue,
		// Total is always derived, never trusted from the client
		Total:           req.Subtotal + req.ShippingValue,
		PaymentMethod:   req.PaymentMethod,
		AddressCEP:      req.AddressCEP,
		AddressStreet:   req.AddressStreet,
		AddressDistrict: req.AddressDistrict,
		AddressCity:     req.AddressCity,
		AddressUF:       req.AddressUF,
		Carrier:         req.Carrier,
		Deadline:        req.Deadline,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		log.Printf("Failed to create order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": "Erro ao criar pedido"})
	}

	h.Hub.OrderCreated(&order)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pedido": order})
}

// UpdateOrderRequest - both fields are optional, absent ones keep
// their stored value.
type UpdateOrderRequest struct {
	Status        *models.OrderStatus `json:"status"`
	PaymentMethod *string             `json:"metodo_pagamento"`
}

// UpdateOrder - PUT /api/pedidos/:id
//
// The status overwrite is unconditional: any stored status may be
// replaced by any valid target status.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID inválido"})
	}

	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Dados inválidos"})
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Pedido não encontrado"})
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Status inválido"})
		}
		order.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = req.PaymentMethod
	}

	if err := h.DB.Save(&order).Error; err != nil {
		log.Printf("Failed to update order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": "Erro ao atualizar pedido"})
	}

	h.Hub.OrderUpdated(&order)

	return c.JSON(fiber.Map{"pedido": order})
}

// UpdateOrderPaymentRequest mirrors the storefront payment callback.
type UpdateOrderPaymentRequest struct {
	Status        models.OrderStatus `json:"status"`
	PaymentMethod string             `json:"metodoPagamento"`
}

// UpdateOrderPayment - PUT /api/pedidos/:id/pagamento
func (h *OrderHandler) UpdateOrderPayment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID inválido"})
	}

	var req UpdateOrderPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Dados inválidos"})
	}

	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Status inválido"})
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Pedido não encontrado"})
	}

	order.Status = req.Status
	order.PaymentMethod = &req.PaymentMethod

	if err := h.DB.Save(&order).Error; err != nil {
		log.Printf("Failed to update order payment %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": "Erro ao atualizar pedido"})
	}

	h.Hub.OrderUpdated(&order)

	return c.JSON(fiber.Map{"pedido": order})
}
