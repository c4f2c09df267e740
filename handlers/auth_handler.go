package handlers

import (
	"log"
	"strings"

	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Register - POST /usuarios
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome, email e senha são obrigatórios"})
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar usuário"})
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		// Unique index on email; a second registration with the same
		// address lands here
		var existing models.User
		if h.DB.Where("email = ?", user.Email).First(&existing).Error == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email já cadastrado"})
		}
		log.Printf("Failed to create user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar usuário"})
	}

	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

// Login - POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dados inválidos"})
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}

	// Verify password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Senha incorreta"})
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro no servidor"})
	}

	return c.JSON(fiber.Map{
		"message": "Login realizado com sucesso",
		"token":   token,
		"usuario": user.Public(),
	})
}

// Me - GET /me echoes the claims of the presented token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := utils.UserIDFromLocals(c)
	return c.JSON(fiber.Map{
		"usuario": fiber.Map{
			"id":    userID,
			"nome":  c.Locals("user_nome"),
			"email": c.Locals("user_email"),
		},
	})
}
