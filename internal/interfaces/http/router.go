package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/auth"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	BookingUC *usecase.BookingUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	protect := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", protect, authHandler.Me)

	// Companies: lectura pública, escritura solo admin
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", protect, adminOnly, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", protect, adminOnly, companyHandler.Update)
	companies.Delete("/:id", protect, adminOnly, companyHandler.Delete)

	// Bookings: ruta anidada para crear/listar por empresa + rutas planas
	bookingHandler := NewBookingHandler(deps.BookingUC)
	companies.Post("/:companyId/bookings", protect, bookingHandler.Create)
	companies.Get("/:companyId/bookings", protect, bookingHandler.List)

	bookings := api.Group("/bookings")
	bookings.Get("/", protect, bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", protect, bookingHandler.Update)
	bookings.Delete("/:id", protect, bookingHandler.Delete)
}
