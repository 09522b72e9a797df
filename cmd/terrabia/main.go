package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kieran237-code/Terrabia/internal/api/handlers"
	"github.com/kieran237-code/Terrabia/internal/api/middleware"
	"github.com/kieran237-code/Terrabia/internal/config"
	"github.com/kieran237-code/Terrabia/internal/health"
	"github.com/kieran237-code/Terrabia/internal/metrics"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	service "github.com/kieran237-code/Terrabia/internal/services"
	"github.com/kieran237-code/Terrabia/internal/telemetry"
	"github.com/kieran237-code/Terrabia/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup (no-op when no endpoint is configured)
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	userRepo := repository.NewUserRepo(repos.DB)
	categoryRepo := repository.NewCategoryRepo(repos.DB)
	productRepo := repository.NewProductRepo(repos.DB)
	reviewRepo := repository.NewReviewRepo(repos.DB)
	agencyRepo := repository.NewAgencyRepo(repos.DB)
	cartRepo := repository.NewCartRepo(repos.DB)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(userRepo, rateLimitRepo, cfg.Security)
	userHandler := handlers.NewUserHandler(userService)
	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(productRepo, categoryRepo)
	productHandler := handlers.NewProductHandler(productService)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	agencyService := service.NewAgencyService(agencyRepo)
	agencyHandler := handlers.NewAgencyHandler(agencyService)
	cartService := service.NewCartService(cartRepo, productRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(cartRepo, agencyRepo, userRepo, emailClient)
	orderHandler := handlers.NewOrderHandler(orderService)
	contactService := service.NewContactService(userRepo)
	contactHandler := handlers.NewContactHandler(contactService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/refresh", userHandler.Refresh())
	routerMux.HandleFunc("GET /api/v1/users/me", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("GET /api/v1/categories", authMiddleware.Authenticate(categoryHandler.ListCategories()))
	routerMux.HandleFunc("GET /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.GetCategory()))
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/products/{id}/photos", authMiddleware.Authenticate(productHandler.AddPhoto()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}/photos/{photoId}", authMiddleware.Authenticate(productHandler.DeletePhoto()))

	routerMux.HandleFunc("POST /api/v1/reviews", authMiddleware.Authenticate(reviewHandler.CreateReview()))
	routerMux.HandleFunc("GET /api/v1/farmers/{id}/reviews", authMiddleware.Authenticate(reviewHandler.ListReviews()))
	routerMux.HandleFunc("PUT /api/v1/reviews/{id}", authMiddleware.Authenticate(reviewHandler.UpdateReview()))
	routerMux.HandleFunc("DELETE /api/v1/reviews/{id}", authMiddleware.Authenticate(reviewHandler.DeleteReview()))

	routerMux.HandleFunc("POST /api/v1/agencies", authMiddleware.Authenticate(agencyHandler.CreateAgency()))
	routerMux.HandleFunc("GET /api/v1/agencies", authMiddleware.Authenticate(agencyHandler.ListAgencies()))
	routerMux.HandleFunc("GET /api/v1/agencies/{id}", authMiddleware.Authenticate(agencyHandler.GetAgency()))
	routerMux.HandleFunc("PUT /api/v1/agencies/{id}", authMiddleware.Authenticate(agencyHandler.UpdateAgency()))
	routerMux.HandleFunc("DELETE /api/v1/agencies/{id}", authMiddleware.Authenticate(agencyHandler.DeleteAgency()))
	routerMux.HandleFunc("GET /api/v1/agencies/{id}/contact-whatsapp", authMiddleware.Authenticate(agencyHandler.WhatsAppContact()))

	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.ViewCart()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))

	routerMux.HandleFunc("POST /api/v1/contact", authMiddleware.Authenticate(contactHandler.Contact()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "terrabia")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}
}
