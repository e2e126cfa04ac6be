package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/assemble-platform/api-go/controllers"
	"github.com/assemble-platform/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Initialize controllers
	adminController := controllers.NewAdminController(db)
	researchController := controllers.NewResearchController(db)
	uploadController := controllers.NewUploadController(db)

	// One report submission per second per IP, with a small burst.
	reportLimiter := middleware.NewIPRateLimiter(rate.Limit(1), 5)

	// All routes require a bearer token.
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupResearchRoutes(protected, researchController, reportLimiter)
		SetupUploadRoutes(protected, uploadController)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminRequired(db))
	{
		SetupAdminRoutes(admin, adminController)
	}
}
