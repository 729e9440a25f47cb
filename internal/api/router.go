package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikens/recetas-api/internal/api/handler"
	"github.com/mikens/recetas-api/internal/api/middleware"
	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/service"
	mongodb "github.com/mikens/recetas-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mikens/recetas-api/internal/infrastructure/db/redis"
)

// Options carries the process-wide settings the router wires into its
// dependencies. The signing secret and admin email are read-only after this.
type Options struct {
	JWTSecret  string
	AdminEmail string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recetas"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	recipeRepo := mongodb.NewRecipeRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	tokenService := service.NewTokenService(opts.JWTSecret, service.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	userService := service.NewUserService(userRepo, opts.AdminEmail, log)
	recipeService := service.NewRecipeService(recipeRepo, userRepo, opts.AdminEmail, log)
	commentService := service.NewCommentService(commentRepo, recipeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	commentHandler := handler.NewCommentHandler(commentService)

	requireAuth := middleware.Auth(tokenService, opts.AdminEmail)
	requireMember := middleware.RBAC(domain.RoleMember, domain.RoleAdmin)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Public reads ---
	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/public", recipeHandler.ListCommunity)
	e.GET("/recipes/:id/comments", commentHandler.ListByRecipe)
	e.GET("/usuarios", userHandler.List)
	e.GET("/usuarios/:id", userHandler.Get)

	// --- Protected mutations ---
	// The route gate checks the role; the services re-check ownership and
	// admin identity so a handler can never be the only line of defense.
	e.POST("/upload/recipes", recipeHandler.Create, requireAuth, requireMember)
	e.PATCH("/recipes/:id", recipeHandler.Patch, requireAuth, requireMember)
	e.DELETE("/recipes/:id", recipeHandler.Delete, requireAuth, requireAdmin)
	e.PUT("/usuarios/:id", userHandler.UpdateProfile, requireAuth, requireMember)
	e.DELETE("/usuarios/:id", userHandler.Delete, requireAuth, requireAdmin)
	e.POST("/comments", commentHandler.Create, requireAuth, requireMember)
	e.DELETE("/comments/:id", commentHandler.Delete, requireAuth, requireMember)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
