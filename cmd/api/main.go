package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/elitesugar/elitesugar-backend/internal/config"
	"github.com/elitesugar/elitesugar-backend/internal/controller"
	"github.com/elitesugar/elitesugar-backend/internal/handler"
	"github.com/elitesugar/elitesugar-backend/internal/middleware"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
	"github.com/elitesugar/elitesugar-backend/internal/service"
	"github.com/elitesugar/elitesugar-backend/pkg/database"
	"github.com/elitesugar/elitesugar-backend/pkg/email"
	"github.com/elitesugar/elitesugar-backend/pkg/logger"
	"github.com/elitesugar/elitesugar-backend/pkg/payment"
	"github.com/elitesugar/elitesugar-backend/pkg/storage"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()
	zapLogger := logger.New()
	defer zapLogger.Sync()

	db := database.NewDatabase()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	personRepo := repository.NewPersonRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	adminCodeRepo := repository.NewAdminCodeRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	// Storage
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}
	imageBase := r2Storage.PublicBaseURL()

	// Email
	emailService := email.NewEmailService(zapLogger)

	// Stripe
	stripeService := payment.NewStripeService(cfg.StripeSecretKey, cfg.FrontendBaseURL)

	// Services
	authService := service.NewAuthService(accountRepo, photoRepo, tokenRepo, adminCodeRepo, emailService, imageBase, cfg.FrontendBaseURL)
	accountService := service.NewAccountService(accountRepo, photoRepo, tokenRepo, imageBase)
	photoService := service.NewPhotoService(photoRepo, r2Storage, zapLogger)
	peopleService := service.NewPeopleService(personRepo, accountRepo, imageBase)
	notificationService := service.NewNotificationService(notificationRepo, accountRepo, personRepo, imageBase)
	paymentService := service.NewPaymentService(stripeService, purchaseRepo, accountRepo, zapLogger)

	authController := controller.NewAuthController(authService)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authController, validator)
	accountHandler := handler.NewAccountHandler(accountService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	peopleHandler := handler.NewPeopleHandler(peopleService)
	notificationHandler := handler.NewNotificationHandler(notificationService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService, zapLogger)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/verify-code", authHandler.VerifyAdminCode)
	api.Post("/forgot-password", authHandler.ForgotPassword)
	api.Post("/reset-password", authHandler.ResetPassword)
	api.Get("/validate-token", middleware.AuthMiddleware(tokenRepo), authHandler.ValidateToken)

	// Stripe webhook (public, signature-verified)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)

	// Protected routes
	api.Use(middleware.AuthMiddleware(tokenRepo))
	{
		api.Post("/logout", authHandler.Logout)

		api.Get("/profile", accountHandler.GetProfile)
		api.Put("/profile", accountHandler.UpdateProfile)
		api.Post("/password/change", accountHandler.ChangePassword)

		photos := api.Group("/photos")
		photos.Get("/", photoHandler.ListPhotos)
		photos.Post("/upload", photoHandler.UploadPhotos)
		photos.Delete("/:id", photoHandler.DeletePhoto)
		photos.Post("/:id/set-profile", photoHandler.SetProfilePicture)

		people := api.Group("/people")
		people.Get("/", peopleHandler.ListPeople)
		people.Get("/stats", peopleHandler.GetStats)
		people.Get("/:id", peopleHandler.GetPersonDetail)
		people.Post("/:id/check-access", peopleHandler.CheckAccess)

		notifications := api.Group("/notifications")
		notifications.Get("/", notificationHandler.ListNotifications)
		notifications.Get("/stats", notificationHandler.GetStats)
		notifications.Post("/mark-all-read", notificationHandler.MarkAllRead)
		notifications.Post("/mark-multiple-read", notificationHandler.MarkManyRead)
		notifications.Delete("/delete-all-read", notificationHandler.DeleteAllRead)
		notifications.Get("/:id", notificationHandler.GetNotification)
		notifications.Post("/:id/mark-read", notificationHandler.MarkRead)
		notifications.Delete("/:id", notificationHandler.DeleteNotification)

		api.Post("/membership/checkout/:tier", paymentHandler.CreateUpgradeSession)

		// Staff-only routes
		notifications.Post("/create", middleware.AdminMiddleware(), notificationHandler.CreateNotification)
		notifications.Post("/send-bulk", middleware.AdminMiddleware(), notificationHandler.SendBulk)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
