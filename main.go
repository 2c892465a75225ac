package main

import (
	"log"
	"net/http"
	"time"

	"mobileshop-server/config"
	"mobileshop-server/database"
	"mobileshop-server/gateway"
	"mobileshop-server/handlers"
	"mobileshop-server/notify"
	"mobileshop-server/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Initialize file storage
	var storage gateway.FileStorage
	if config.AppConfig.CloudinaryURL != "" {
		storage, err = gateway.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
		log.Println("Cloudinary initialized successfully")
	} else {
		storage = gateway.NoStorage{}
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	gw := gateway.NewPostgresClient(db.DB, storage)

	sessions := session.NewManager(config.AppConfig.JWTSecret, 15*24*time.Hour)

	handlers.Initialize(gw, sessions, notify.LogNotifier{})

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Mobileshop Server is running",
		})
	})

	api := router.Group("/api/v1")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", handlers.AdminSignup)
			auth.POST("/login", handlers.AdminLogin)
			auth.POST("/logout", handlers.AuthMiddleware(), handlers.AdminLogout)
		}

		// Public catalog routes
		api.GET("/brands", handlers.GetBrands)
		api.GET("/brands/:id", handlers.GetBrand)
		api.GET("/brands/:id/models", func(c *gin.Context) {
			c.Params = append(c.Params, gin.Param{Key: "brandId", Value: c.Param("id")})
			handlers.GetPhoneModelsByBrand(c)
		})
		api.GET("/models/:id", handlers.GetPhoneModel)
		api.GET("/categories", handlers.GetCategoryHierarchy)
		api.GET("/categories/:categoryId/subcategories", handlers.GetSubcategoriesByCategory)
		api.GET("/products", handlers.GetProducts)
		api.GET("/gallery", handlers.GetGalleryPhotos)

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(handlers.AuthMiddleware())
		{
			admin.GET("/stats", handlers.AdminStats)
			admin.POST("/upload", handlers.AdminUploadImage)

			admin.GET("/brands", handlers.AdminGetBrands)
			admin.POST("/brands", handlers.AdminCreateBrand)
			admin.PUT("/brands/:id", handlers.AdminUpdateBrand)
			admin.DELETE("/brands/:id", handlers.AdminDeleteBrand)

			admin.GET("/models", handlers.AdminGetPhoneModels)
			admin.POST("/models", handlers.AdminCreatePhoneModel)
			admin.PUT("/models/:id", handlers.AdminUpdatePhoneModel)
			admin.DELETE("/models/:id", handlers.AdminDeletePhoneModel)

			admin.GET("/categories", handlers.AdminGetCategories)
			admin.POST("/categories", handlers.AdminCreateCategory)
			admin.PUT("/categories/:id", handlers.AdminUpdateCategory)
			admin.DELETE("/categories/:id", handlers.AdminDeleteCategory)

			admin.GET("/subcategories", handlers.AdminGetSubcategories)
			admin.POST("/subcategories", handlers.AdminCreateSubcategory)
			admin.PUT("/subcategories/:id", handlers.AdminUpdateSubcategory)
			admin.DELETE("/subcategories/:id", handlers.AdminDeleteSubcategory)

			admin.GET("/products", handlers.AdminGetProducts)
			admin.POST("/products", handlers.AdminCreateProduct)
			admin.PUT("/products/:id", handlers.AdminUpdateProduct)
			admin.DELETE("/products/:id", handlers.AdminDeleteProduct)

			admin.GET("/gallery", handlers.AdminGetGalleryPhotos)
			admin.POST("/gallery", handlers.AdminCreateGalleryPhoto)
			admin.PUT("/gallery/:id", handlers.AdminUpdateGalleryPhoto)
			admin.DELETE("/gallery/:id", handlers.AdminDeleteGalleryPhoto)

			// Row edit sessions (one editor per entity per admin session)
			admin.GET("/edit/:entity", handlers.GetRowEdit)
			admin.POST("/edit/:entity/:id", handlers.StartRowEdit)
			admin.PATCH("/edit/:entity", handlers.SetRowEditField)
			admin.POST("/edit/:entity/commit", handlers.CommitRowEdit)
			admin.POST("/edit/:entity/cancel", handlers.CancelRowEdit)
		}
	}

	// Start server
	log.Printf("Starting Mobileshop Server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}
