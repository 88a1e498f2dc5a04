package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"facilpay-api/config"
	authcontroller "facilpay-api/controllers/auth"
	healthcontroller "facilpay-api/controllers/health"
	paymentcontroller "facilpay-api/controllers/payment"
	usercontroller "facilpay-api/controllers/user"
	"facilpay-api/middleware"
	"facilpay-api/repository"
	authservice "facilpay-api/services/auth"
	paymentservice "facilpay-api/services/payment"
	"facilpay-api/services/token"
	userservice "facilpay-api/services/user"
)

// SetupRoutes wires repositories, services and controllers, and registers
// every route. Guarded routes are wrapped explicitly; everything else is
// public.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	authService := authservice.NewService(userRepo, tokens)
	userService := userservice.NewService(userRepo)
	paymentService := paymentservice.NewService(paymentRepo)

	authController := authcontroller.NewAuthController(authService)
	userController := usercontroller.NewUserController(userService, authService)
	paymentController := paymentcontroller.NewPaymentController(paymentService)
	healthController := healthcontroller.NewHealthController(db)

	guard := middleware.Protected(tokens, authService)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Get("/", healthController.Root)
	app.Get("/health", healthController.Health)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authController.Register)
	authGroup.Post("/login", authController.Login)

	/*=============================================================================
	| User Routes (creation is public, the rest require a bearer token)
	===============================================================================*/
	users := app.Group("/users")
	users.Post("/", userController.Create)
	users.Get("/", guard, userController.List)
	users.Get("/:id", guard, userController.Get)
	users.Patch("/:id", guard, userController.Update)
	users.Delete("/:id", guard, userController.Delete)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	payments := app.Group("/payments")
	payments.Post("/", paymentController.Create)
	payments.Get("/", paymentController.List)
	payments.Get("/today", paymentController.ListToday)
	payments.Post("/webhook", paymentController.Webhook)
	payments.Get("/:id", paymentController.Get)
}
