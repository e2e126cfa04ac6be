package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/assemble-platform/api-go/controllers"
	"github.com/assemble-platform/api-go/middleware"
)

func SetupResearchRoutes(protected *gin.RouterGroup, researchController *controllers.ResearchController, reportLimiter *middleware.IPRateLimiter) {
	research := protected.Group("/research")
	{
		research.GET("/papers", researchController.GetPapers)
		research.GET("/papers/:id", researchController.GetPaper)
		research.POST("/papers", researchController.CreatePaper)
		research.PUT("/papers/:id", researchController.UpdatePaper)
		research.DELETE("/papers/:id", researchController.DeletePaper)
		research.POST("/papers/:id/publish", researchController.PublishPaper)
		research.GET("/my-papers", researchController.GetMyPapers)
		research.POST("/papers/:id/report", middleware.RateLimit(reportLimiter), researchController.ReportPaper)
	}
}
