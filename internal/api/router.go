package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/avelara/storefront-be/internal/api/handlers"
	"github.com/avelara/storefront-be/internal/auth"
	"github.com/avelara/storefront-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.TokenManager, userService services.UserServiceProvider, catalogService services.CatalogServiceProvider, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// 100 requests per 15 minutes per client IP
	r.Use(httprate.LimitByIP(100, 15*time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Hello, API is running!"))
	})

	// Auth endpoints; registration and login are unauthenticated by design
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/users", authHandler.GetUsers)

	// Category endpoints
	r.Post("/addCategory", categoryHandler.Add)
	r.Get("/getCategories", categoryHandler.GetAll)
	r.Put("/updateCategory/{id}", categoryHandler.Update)
	r.Delete("/deleteCategory/{id}", categoryHandler.Delete)

	// Product endpoints; only creation requires a bearer token
	r.With(tokens.Middleware()).Post("/addProduct", productHandler.Add)
	r.Get("/getProducts", productHandler.GetAll)
	r.Get("/getProductByCategory/{id}", productHandler.GetByCategory)

	return r
}
