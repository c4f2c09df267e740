package main

import (
	"log"

	"github.com/Devjv2007/ecommerce-apple/config"
	"github.com/Devjv2007/ecommerce-apple/handlers"
	"github.com/Devjv2007/ecommerce-apple/internal/cart"
	"github.com/Devjv2007/ecommerce-apple/internal/checkout"
	"github.com/Devjv2007/ecommerce-apple/internal/payment"
	"github.com/Devjv2007/ecommerce-apple/internal/shipping"
	"github.com/Devjv2007/ecommerce-apple/internal/ws"
	"github.com/Devjv2007/ecommerce-apple/middleware"
	"github.com/Devjv2007/ecommerce-apple/models"
	"github.com/Devjv2007/ecommerce-apple/utils"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.DBReset {
		log.Println("DB_RESET=true, dropping and recreating all tables")
		if err := config.ResetAndMigrate(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
	} else if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	config.SeedUsers(db)
	config.SeedProducts(db)

	// Cart persistence: redis when available, in-memory otherwise
	var cartStore cart.Store
	if redisClient, err := config.ConnectRedis(cfg); err != nil {
		log.Println("Redis unavailable, carts will not survive restarts")
		cartStore = cart.NewMemoryStore()
	} else {
		cartStore = cart.NewRedisStore(redisClient)
	}

	hub := ws.NewHub()
	go hub.Run()

	quoter := shipping.NewQuoter(shipping.NewViaCEPClient(cfg.ViaCEPBaseURL))
	simulator := payment.NewSimulator()
	checkoutService := checkout.NewService(cartStore, simulator, handlers.GormOrderStore{DB: db})

	app := fiber.New(fiber.Config{
		AppName:      "Ecommerce Apple API",
		ServerHeader: "Ecommerce Apple Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	authHandler := handlers.NewAuthHandler(db)
	userHandler := handlers.NewUserHandler(db)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db, cartStore)
	shippingHandler := handlers.NewShippingHandler(quoter)
	orderHandler := handlers.NewOrderHandler(db, hub)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, hub)
	dashboardHandler := handlers.NewDashboardHandler(db)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(models.SuccessResponse("OK", nil))
	})

	// Public routes
	app.Post("/usuarios", authHandler.Register)
	app.Get("/usuarios", userHandler.GetUsers)
	app.Get("/usuarios/:id", userHandler.GetUser)
	app.Post("/login", authHandler.Login)

	app.Get("/produtos", productHandler.GetAllProducts)
	app.Get("/produtos/buscar", productHandler.SearchProducts)
	app.Get("/produtos/:id", productHandler.GetProduct)

	// Catalog admin writes
	app.Post("/produtos", utils.AuthMiddleware, productHandler.CreateProduct)
	app.Put("/produtos/:id", utils.AuthMiddleware, productHandler.UpdateProduct)
	app.Delete("/produtos/:id", utils.AuthMiddleware, productHandler.DeleteProduct)

	// Authenticated storefront routes
	app.Get("/me", utils.AuthMiddleware, authHandler.Me)

	carrinho := app.Group("/carrinho", utils.AuthMiddleware)
	carrinho.Get("/", cartHandler.GetCart)
	carrinho.Post("/", cartHandler.AddToCart)
	carrinho.Put("/:id", cartHandler.UpdateCartItem)
	carrinho.Delete("/:id", cartHandler.RemoveFromCart)
	carrinho.Delete("/", cartHandler.ClearCart)

	api := app.Group("/api", utils.AuthMiddleware)
	api.Post("/frete/calcular", shippingHandler.CalculateShipping)
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Get("/pedidos/usuario/:id", orderHandler.GetUserOrders)
	api.Post("/pedidos", orderHandler.CreateOrder)
	api.Put("/pedidos/:id", orderHandler.UpdateOrder)
	api.Put("/pedidos/:id/pagamento", orderHandler.UpdateOrderPayment)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Live order feed for the admin dashboard
	app.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/dashboard", ws.Handler(hub))

	middleware.SetupErrorHandler(app)

	log.Printf("Server starting on host %s in port %s", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
