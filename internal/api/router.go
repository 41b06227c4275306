package api

import (
	"os"

	"billed/docs"
	"billed/internal/api/handlers"
	"billed/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	billHandler *handlers.BillHandler,
	pageHandler *handlers.PageHandler,
	uploadDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 12 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	if _, err := os.Stat(uploadDir); err == nil {
		appLogger.Info("Serving uploads", zap.String("path", uploadDir))
		app.Static("/uploads", uploadDir)
	} else {
		appLogger.Warn("Upload directory not found, receipts will not be served", zap.String("path", uploadDir))
	}

	// Pages
	app.Get("/", pageHandler.NewBill)
	app.Get("/bills", pageHandler.Bills)

	// API routes
	bills := app.Group("/api/v1/bills")
	bills.Post("/receipts", billHandler.UploadReceipt)
	bills.Post("", billHandler.CreateBill)
	bills.Get("", billHandler.ListBills)
	bills.Get("/:id", billHandler.GetBill)

	return app
}
