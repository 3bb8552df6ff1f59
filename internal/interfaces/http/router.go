package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallaceSt/bzutils/internal/application/auth"
	"github.com/WallaceSt/bzutils/internal/application/report"
	"github.com/WallaceSt/bzutils/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	PeriodUC   *usecase.PeriodUseCase
	PriceUC    *usecase.PriceUseCase
	PriceList  *report.PriceListUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. El alta de usuario y el login son
// públicos; todo lo demás requiere Bearer Token, y los deletes además rol
// admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users: registro público, resto protegido
	userHandler := NewUserHandler(deps.UserUC)
	api.Post("/users", userHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole("admin")

	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Periods (protegido)
	periods := protected.Group("/periods")
	periodHandler := NewPeriodHandler(deps.PeriodUC, deps.PriceList)
	periods.Post("/", periodHandler.Create)
	periods.Get("/", periodHandler.List)
	periods.Get("/:id", periodHandler.GetDetail)
	periods.Get("/:id/pdf", periodHandler.ExportPDF)
	periods.Put("/:id", periodHandler.Update)
	periods.Delete("/:id", adminOnly, periodHandler.Delete)

	// Prices (protegido)
	prices := protected.Group("/prices")
	priceHandler := NewPriceHandler(deps.PriceUC)
	prices.Post("/", priceHandler.Create)
	prices.Get("/", priceHandler.List)
	prices.Get("/:id", priceHandler.GetByID)
	prices.Put("/:id", priceHandler.Update)
	prices.Delete("/:id", adminOnly, priceHandler.Delete)
}
