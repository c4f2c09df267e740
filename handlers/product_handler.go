package handlers

import (
	"log"
	"strconv"

	"github.com/Devjv2007/ecommerce-apple/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// ProductRequest covers create and update payloads
type ProductRequest struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	ImageURL    string  `json:"imagem_url"`
	Image2      *string `json:"imagem_2"`
	Image3      *string `json:"imagem_3"`
	Image4      *string `json:"imagem_4"`
	Image5      *string `json:"imagem_5"`
}

// GetAllProducts - GET /produtos
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.DB.Order("id desc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao buscar produtos"})
	}
	return c.JSON(products)
}

// SearchProducts - GET /produtos/buscar?termo=
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	termo := c.Query("termo")
	if termo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Termo de busca é obrigatório"})
	}

	var products []models.Product
	err := h.DB.
		Where("nome ILIKE ? OR descricao ILIKE ?", "%"+termo+"%", "%"+termo+"%").
		Order("id desc").
		Limit(10).
		Find(&products).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
	}

	return c.JSON(products)
}

// GetProduct - GET /produtos/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produto não encontrado"})
	}

	return c.JSON(product)
}

// CreateProduct - POST /produtos
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	if req.Name == "" || req.Price <= 0 || req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome, preço e imagem são obrigatórios"})
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Image2:      req.Image2,
		Image3:      req.Image3,
		Image4:      req.Image4,
		Image5:      req.Image5,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		log.Printf("Failed to create product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar produto"})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct - PUT /produtos/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produto não encontrado"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	// Update fields
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.Image2 = req.Image2
	product.Image3 = req.Image3
	product.Image4 = req.Image4
	product.Image5 = req.Image5

	if err := h.DB.Save(&product).Error; err != nil {
		log.Printf("Failed to update product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao atualizar produto"})
	}

	return c.JSON(product)
}

// DeleteProduct - DELETE /produtos/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produto não encontrado"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		log.Printf("Failed to delete product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao excluir produto"})
	}

	return c.JSON(fiber.Map{"message": "Produto excluído com sucesso", "produto": product})
}
