package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-api/internal/application/auth"
	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *usecase.CustomerUseCase
	ItemUC     *usecase.ItemUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PDFUC      *billing.PDFUseCase
	JWTSecret  string
	SessionTTL time.Duration
}

// Router registra las rutas de la API. Las lecturas (GET) son públicas; toda
// ruta que muta estado requiere sesión, igual que logout y profile.
func Router(app *fiber.App, deps RouterDeps) {
	protect := AuthMiddleware(deps.JWTSecret)

	// Índice de endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"auth": fiber.Map{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
				"logout":   "POST /auth/logout",
				"profile":  "GET /auth/profile",
			},
			"customers": "GET|POST /customers, PUT|DELETE /customers/:id",
			"items":     "GET|POST /items, PUT|DELETE /items/:id",
			"invoices":  "GET|POST /invoices, GET|PUT|DELETE /invoices/:id, GET /invoices/:id/pdf",
			"docs":      "GET /docs",
		})
	})

	// Auth
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", protect, authHandler.Logout)
	authGroup.Get("/profile", protect, authHandler.Profile)

	// Customers
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", protect, customerHandler.Create)
	customers.Put("/:id", protect, customerHandler.Update)
	customers.Delete("/:id", protect, customerHandler.Delete)

	// Items
	items := app.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", protect, itemHandler.Create)
	items.Put("/:id", protect, itemHandler.Update)
	items.Delete("/:id", protect, itemHandler.Delete)

	// Invoices
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/", protect, invoiceHandler.Create)
	invoices.Put("/:id", protect, invoiceHandler.Update)
	invoices.Delete("/:id", protect, invoiceHandler.Delete)
}
