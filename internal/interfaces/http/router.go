package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alquiler-api/internal/application/auth"
	"github.com/jhoicas/Alquiler-api/internal/application/documents"
	"github.com/jhoicas/Alquiler-api/internal/application/orders"
	"github.com/jhoicas/Alquiler-api/internal/application/payments"
	"github.com/jhoicas/Alquiler-api/internal/application/returns"
	"github.com/jhoicas/Alquiler-api/internal/application/stock"
	"github.com/jhoicas/Alquiler-api/internal/application/usecase"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	OrderUC    *orders.UseCase
	PaymentUC  *payments.UseCase
	ReturnsUC  *returns.UseCase
	StockUC    *stock.UseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	CompanyUC  *usecase.CompanyUseCase
	DocumentUC *documents.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo administrador total.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdminTotal),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/portfolio", orderHandler.Portfolio)
	ordersGroup.Get("/queues/dispatch", orderHandler.DispatchQueue)
	ordersGroup.Get("/queues/returns", orderHandler.ReturnsQueue)
	ordersGroup.Get("/queues/pendings", orderHandler.PendingsQueue)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Post("/:id/transition", orderHandler.Transition)
	ordersGroup.Delete("/:id", RequireRole(entity.RoleAdminTotal), orderHandler.Delete)

	// Cobros y caja
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	ordersGroup.Post("/:id/payments", paymentHandler.Apply)
	ordersGroup.Get("/:id/cash", paymentHandler.EntriesByOrder)
	cash := protected.Group("/cash")
	cash.Post("/expenses", paymentHandler.RegisterExpense)
	cash.Get("/report", paymentHandler.Report)
	cash.Delete("/entries/:id", RequireRole(entity.RoleAdminTotal), paymentHandler.DeleteEntry)

	// Retiros con novedades
	returnsHandler := NewReturnsHandler(deps.ReturnsUC)
	ordersGroup.Post("/:id/novelties", returnsHandler.ReportNovelties)
	ordersGroup.Post("/:id/novelties/resolve", returnsHandler.Resolve)

	// Documentos PDF
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	ordersGroup.Get("/:id/receipts/:receiptId/pdf", documentHandler.Receipt)
	ordersGroup.Get("/:id/delivery-guide/pdf", documentHandler.DeliveryGuide)

	// Catálogo
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", RequireRole(entity.RoleAdminTotal, entity.RoleAdminParcial), productHandler.Delete)

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := protected.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdminTotal), clientHandler.Delete)

	// Empresa
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company := protected.Group("/company")
	company.Get("/", companyHandler.Get)
	company.Put("/", RequireRole(entity.RoleAdminTotal), companyHandler.Save)
}
