package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calificaciones-api/internal/application/auth"
	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StoreUC     *usecase.StoreUseCase
	RatingUC    *usecase.RatingUseCase
	UserUC      *usecase.UserUseCase
	OwnerUC     *usecase.OwnerUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Pipeline por petición:
// AuthMiddleware resuelve el principal; RequireRole restringe por rol;
// el handler llama al caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tiendas: listado y calificación (cualquier rol autenticado)
	storeHandler := NewStoreHandler(deps.StoreUC, deps.RatingUC)
	stores := protected.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Post("/:storeId/ratings", storeHandler.SubmitRating)

	// Cambio de contraseña propio (cualquier rol autenticado)
	users := protected.Group("/users")
	users.Put("/password", authHandler.ChangePassword)

	// Panel del dueño (solo store_owner)
	owner := protected.Group("/owner", RequireRole(entity.RoleStoreOwner))
	ownerHandler := NewOwnerHandler(deps.OwnerUC)
	owner.Get("/dashboard", ownerHandler.Dashboard)
	owner.Get("/dashboard/pdf", ownerHandler.DashboardPDF)

	// Administración (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.UserUC, deps.StoreUC, deps.DashboardUC)
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/store-owners", adminHandler.ListStoreOwners)
	admin.Get("/stores", adminHandler.ListStores)
	admin.Post("/stores", adminHandler.CreateStore)
	admin.Put("/stores/:id", adminHandler.UpdateStore)
	admin.Delete("/stores/:id", adminHandler.DeleteStore)
}
