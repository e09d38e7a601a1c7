package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/recetario-app/recetario-api/docs" // Import generated docs
	"github.com/recetario-app/recetario-api/internal/auth"
	"github.com/recetario-app/recetario-api/internal/config"
	"github.com/recetario-app/recetario-api/internal/controllers"
	"github.com/recetario-app/recetario-api/internal/database"
	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/services"
	"github.com/recetario-app/recetario-api/internal/storage"
)

var (
	db            *gorm.DB
	configuration *config.Config

	tokenStore   auth.TokenStore
	tokenService *auth.TokenService

	authController        controllers.AuthController
	recetaController      controllers.RecetaController
	ingredienteController controllers.IngredienteController
	comentarioController  controllers.ComentarioController
	likeController        controllers.LikeController
)

// @title Recetario API
// @version 1.0
// @description API REST para compartir recetas: usuarios, recetas, ingredientes, likes y comentarios
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	wireComponents(configuration)

	// Purge dead token rows in the background
	go runTokenCleanup(tokenStore)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Receta{},
		&models.Ingrediente{},
		&models.Like{},
		&models.Comentario{},
		&models.TokenAcceso{},
	)
	checkPanicErr(err)

	return db
}

// wireComponents builds the service and controller graph
func wireComponents(conf *config.Config) {
	tokenStore = auth.NewGormTokenStore(db)
	tokenService = auth.NewTokenService(conf.JWTSecret, time.Duration(conf.TokenTTLMinutes)*time.Minute, tokenStore)

	imageStorage := storage.NewLocalStorage(conf.StoragePath, conf.StorageBaseURL)
	validate := controllers.NewValidator()

	authService := services.NewAuthService(db, tokenService)
	recetaService := services.NewRecetaService(db, imageStorage)
	ingredienteService := services.NewIngredienteService(db)
	comentarioService := services.NewComentarioService(db)
	likeService := services.NewLikeService(db)

	authController = controllers.NewAuthController(authService, validate)
	recetaController = controllers.NewRecetaController(recetaService, likeService, validate)
	ingredienteController = controllers.NewIngredienteController(ingredienteService, recetaService, validate)
	comentarioController = controllers.NewComentarioController(comentarioService, recetaService, validate)
	likeController = controllers.NewLikeController(likeService, recetaService)
}

// runTokenCleanup deletes expired token rows at startup and then hourly.
// Revoked tokens are already deleted on logout/refresh; this sweeps the rows
// of sessions that simply expired.
func runTokenCleanup(store auth.TokenStore) {
	purge := func() {
		if err := store.DeleteExpired(); err != nil {
			log.WithError(err).Warn("Failed to purge expired tokens")
		}
	}
	purge()

	ticker := time.NewTicker(time.Hour)
	for range ticker.C {
		purge()
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)
	router.GET("/ping", pingHandler)

	// Uploaded recipe images
	router.Static("/storage", configuration.StoragePath)

	requireAuth := middleware.RequireAuth(tokenService, db)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)

		protected := authGroup.Group("")
		protected.Use(requireAuth)
		{
			protected.POST("/logout", authController.Logout)
			protected.GET("/me", authController.Me)
			protected.POST("/refresh", authController.Refresh)
		}
	}

	api := router.Group("")
	api.Use(requireAuth)
	{
		api.GET("/recetas", recetaController.ListRecetas)
		api.POST("/recetas", recetaController.CreateReceta)
		api.GET("/recetas/:id", recetaController.GetReceta)
		api.PUT("/recetas/:id", recetaController.UpdateReceta)
		api.DELETE("/recetas/:id", recetaController.DeleteReceta)

		api.GET("/recetas/:id/ingredientes", ingredienteController.ListIngredientes)
		api.POST("/recetas/:id/ingredientes", ingredienteController.CreateIngrediente)
		api.GET("/ingredientes/:id", ingredienteController.GetIngrediente)
		api.PUT("/ingredientes/:id", ingredienteController.UpdateIngrediente)
		api.DELETE("/ingredientes/:id", ingredienteController.DeleteIngrediente)

		api.POST("/recetas/:id/like", likeController.ToggleLike)
		api.GET("/recetas/:id/likes", likeController.ListLikes)
		api.GET("/recetas/:id/likes/count", likeController.CountLikes)

		api.GET("/recetas/:id/comentarios", comentarioController.ListComentarios)
		api.POST("/recetas/:id/comentarios", comentarioController.CreateComentario)
		api.GET("/comentarios/:id", comentarioController.GetComentario)
		api.PUT("/comentarios/:id", comentarioController.UpdateComentario)
		api.DELETE("/comentarios/:id", comentarioController.DeleteComentario)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// pingHandler answers the unauthenticated liveness probe
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /ping [get]
func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pong": true})
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "recetario-api",
	})
}
