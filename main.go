package main

import (
	"log"
	"os"
	"time"

	"github.com/equiptrack/backend/auth"
	"github.com/equiptrack/backend/config"
	"github.com/equiptrack/backend/database"
	"github.com/equiptrack/backend/handlers"
	"github.com/equiptrack/backend/natsserver"
	"github.com/equiptrack/backend/services"
	"github.com/equiptrack/backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Connect to database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close(db)

	// Start embedded NATS server for the activity feed
	bus, err := natsserver.New(natsserver.DefaultConfig())
	if err != nil {
		log.Fatalf("❌ Failed to start NATS server: %v", err)
	}
	defer bus.Shutdown()

	// Initialize activity hub for WebSocket streaming
	hub, err := services.NewHub(bus.Conn())
	if err != nil {
		log.Fatalf("❌ Failed to start activity hub: %v", err)
	}
	go hub.Run()
	log.Println("📺 Activity hub initialized")

	// Stores and auth
	users := store.NewUserStore(db)
	employees := store.NewEmployeeStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	gate := auth.NewGate(tokens)

	h := handlers.New(users, employees, tokens, hub, bus)

	// Setup Gin router
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// WebSocket route for the activity feed (outside the API groups)
	router.GET("/ws/activity", h.HandleActivityWebSocket)
	router.GET("/api/feed/stats", h.GetFeedStats)

	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/register", h.Register)
		userRoutes.POST("/login", h.Login)
		userRoutes.GET("", h.GetAllUsers)
		userRoutes.GET("/email/:email", h.GetUserByEmail)
		userRoutes.GET("/:id", h.GetUserByID)
	}

	// Employee routes, bearer-protected
	employeeRoutes := router.Group("/employees")
	employeeRoutes.Use(gate.Middleware())
	{
		employeeRoutes.POST("/create", h.CreateEmployee)
		employeeRoutes.GET("/all", h.GetEmployees)
		employeeRoutes.GET("/allPerPage", h.GetEmployeesPerPage)
		employeeRoutes.GET("/:id", h.GetEmployeeByID)
	}

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
