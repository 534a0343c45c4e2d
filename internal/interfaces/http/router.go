package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brunocardsx/sys-Obras/internal/application/analytics"
	appauth "github.com/brunocardsx/sys-Obras/internal/application/auth"
	"github.com/brunocardsx/sys-Obras/internal/application/catalog"
	"github.com/brunocardsx/sys-Obras/internal/application/ledger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProjectUC   *catalog.ProjectUseCase
	ProductUC   *catalog.ProductUseCase
	InvoiceUC   *ledger.InvoiceUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *appauth.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Obras
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.DashboardUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Get("/:id/summary", projectHandler.Summary)

	// Catálogo de produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Notas fiscais
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Painel financeiro
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.Metrics)
}
