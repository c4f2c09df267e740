package handlers

import (
	"log"
	"time"

	"github.com/Devjv2007/ecommerce-apple/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// RecentOrder is an order row with the buyer name joined in.
type RecentOrder struct {
	ID        uint               `json:"id"`
	UserName  string             `gorm:"column:usuario_nome" json:"usuario_nome"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `gorm:"column:data_pedido" json:"data_pedido"`
	Status    models.OrderStatus `json:"status"`
}

// GetStats - GET /api/dashboard/stats
//
// Every figure is recomputed per request; there is no cache.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	var totalOrders int64
	if err := h.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return h.statsError(c, err)
	}

	var totalRevenue float64
	if err := h.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return h.statsError(c, err)
	}

	var totalUsers int64
	if err := h.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return h.statsError(c, err)
	}

	// Day boundary at local midnight
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var ordersToday int64
	if err := h.DB.Model(&models.Order{}).
		Where("data_pedido >= ?", midnight).
		Count(&ordersToday).Error; err != nil {
		return h.statsError(c, err)
	}

	var revenueToday float64
	if err := h.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("data_pedido >= ?", midnight).
		Scan(&revenueToday).Error; err != nil {
		return h.statsError(c, err)
	}

	recentOrders := make([]RecentOrder, 0, 5)
	if err := h.DB.Model(&models.Order{}).
		Select("pedidos.id, usuarios.nome AS usuario_nome, pedidos.total, pedidos.data_pedido, pedidos.status").
		Joins("JOIN usuarios ON usuarios.id = pedidos.usuario_id").
		Order("pedidos.data_pedido desc").
		Limit(5).
		Scan(&recentOrders).Error; err != nil {
		return h.statsError(c, err)
	}

	return c.JSON(fiber.Map{
		"totalPedidos":    totalOrders,
		"receitaTotal":    totalRevenue,
		"totalUsuarios":   totalUsers,
		"pedidosHoje":     ordersToday,
		"receitaHoje":     revenueToday,
		"pedidosRecentes": recentOrders,
	})
}

func (h *DashboardHandler) statsError(c *fiber.Ctx, err error) error {
	log.Printf("Failed to compute dashboard stats: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao buscar estatísticas do dashboard"})
}
