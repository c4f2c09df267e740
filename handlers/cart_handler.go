package handlers

import (
	"errors"

	"github.com/Devjv2007/ecommerce-apple/internal/cart"
	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CartHandler struct {
	DB    *gorm.DB
	Store cart.Store
}

func NewCartHandler(db *gorm.DB, store cart.Store) *CartHandler {
	return &CartHandler{DB: db, Store: store}
}

// AddToCartRequest - produto_id is required, quantidade defaults to 1
type AddToCartRequest struct {
	ProductID uint `json:"produto_id"`
	Quantity  int  `json:"quantidade"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantidade"`
}

func (h *CartHandler) loadCart(c *fiber.Ctx) (*cart.Cart, error) {
	userID, ok := utils.UserIDFromLocals(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
	}
	return cart.Load(c.UserContext(), h.Store, userID)
}

// GetCart - GET /carrinho
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userCart, err := h.loadCart(c)
	if err != nil {
		return cartError(c, err)
	}

	return c.JSON(fiber.Map{
		"itens":       userCart.Items(),
		"total_itens": userCart.TotalItems(),
		"total_preco": userCart.TotalPrice(),
	})
}

// AddToCart - POST /carrinho
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantidade deve ser pelo menos 1"})
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produto não encontrado"})
	}

	userCart, err := h.loadCart(c)
	if err != nil {
		return cartError(c, err)
	}

	snapshot := cart.ProductSnapshot{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
	}

	// Add is one unit at a time; every call persists
	for i := 0; i < req.Quantity; i++ {
		if err := userCart.Add(c.UserContext(), snapshot); err != nil {
			return cartError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"itens":       userCart.Items(),
		"total_itens": userCart.TotalItems(),
	})
}

// UpdateCartItem - PUT /carrinho/:id
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	userCart, err := h.loadCart(c)
	if err != nil {
		return cartError(c, err)
	}

	if err := userCart.UpdateQuantity(c.UserContext(), itemID, req.Quantity); err != nil {
		return cartError(c, err)
	}

	if req.Quantity <= 0 {
		return c.JSON(fiber.Map{"message": "Item removido"})
	}
	return c.JSON(fiber.Map{"itens": userCart.Items()})
}

// RemoveFromCart - DELETE /carrinho/:id
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	itemID := c.Params("id")

	userCart, err := h.loadCart(c)
	if err != nil {
		return cartError(c, err)
	}

	if err := userCart.Remove(c.UserContext(), itemID); err != nil {
		return cartError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Item removido do carrinho"})
}

// ClearCart - DELETE /carrinho
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userCart, err := h.loadCart(c)
	if err != nil {
		return cartError(c, err)
	}

	if err := userCart.Clear(c.UserContext()); err != nil {
		return cartError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Carrinho esvaziado"})
}

func cartError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	case errors.Is(err, cart.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item não encontrado no carrinho"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao acessar o carrinho"})
	}
}
