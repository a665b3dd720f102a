package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/repairworks/backoffice/internal/api/handler"
	"github.com/repairworks/backoffice/internal/api/middleware"
	"github.com/repairworks/backoffice/internal/core/service"
	mongodb "github.com/repairworks/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/repairworks/backoffice/internal/infrastructure/db/redis"

	_ "github.com/repairworks/backoffice/docs"
)

// Options carries everything the router needs beyond the two databases.
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
	StaticDir     string
	Logger        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	clients := mongodb.NewClientRepository(db)
	contractors := mongodb.NewContractorRepository(db)
	materials := mongodb.NewMaterialRepository(db)
	objects := mongodb.NewWorkObjectRepository(db)
	orders := mongodb.NewOrderRepository(db)

	sessions := redisdb.NewSessionStore(rdb, opts.SessionSecret, opts.SessionTTL)

	authService := service.NewAuthService(users, sessions, opts.Logger)
	orderService := service.NewOrderService(clients, contractors, objects, materials, users, orders, opts.Logger)
	dashboardService := service.NewDashboardService(clients, contractors, objects, materials, users, orders, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, opts.SessionTTL)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler(clients, contractors, materials, objects)
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.Use(middleware.Session(sessions))

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// The login page is the only file served without a session; the
	// dashboard shell sits behind the auth gate.
	e.File("/login.html", opts.StaticDir+"/login.html")
	e.GET("/", func(c echo.Context) error {
		return c.File(opts.StaticDir + "/index.html")
	}, middleware.RequireAuth)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.RequireAuth)
	authed.GET("/api/data", dashboardHandler.Data)
	authed.POST("/create_order", orderHandler.Create)
	authed.GET("/api/clients", catalogHandler.ListClients)
	authed.GET("/api/contractors", catalogHandler.ListContractors)
	authed.GET("/api/materials", catalogHandler.ListMaterials)
	authed.GET("/api/objects", catalogHandler.ListObjects)

	// --- Admin routes ---
	admin := e.Group("", middleware.RequireAuth, middleware.RequireAdmin)
	admin.DELETE("/delete_order/:order_id", orderHandler.Delete)
	admin.POST("/api/clients", catalogHandler.CreateClient)
	admin.DELETE("/api/clients/:id", catalogHandler.DeleteClient)
	admin.POST("/api/contractors", catalogHandler.CreateContractor)
	admin.DELETE("/api/contractors/:id", catalogHandler.DeleteContractor)
	admin.POST("/api/materials", catalogHandler.CreateMaterial)
	admin.DELETE("/api/materials/:id", catalogHandler.DeleteMaterial)
	admin.POST("/api/objects", catalogHandler.CreateObject)
	admin.DELETE("/api/objects/:id", catalogHandler.DeleteObject)

	return e
}
