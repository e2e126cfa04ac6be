package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/assemble-platform/api-go/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.GET("/projects", adminController.GetAllProjects)
	admin.DELETE("/projects/:id", adminController.DeleteProject)

	admin.GET("/hackathons", adminController.GetAllHackathons)
	admin.DELETE("/hackathons/:id", adminController.DeleteHackathon)

	admin.GET("/users", adminController.GetAllUsers)
	admin.PUT("/users/:id/toggle-active", adminController.ToggleUserActive)

	admin.GET("/stats", adminController.GetStats)

	admin.GET("/research-papers", adminController.GetAllResearchPapers)
	admin.DELETE("/research-papers/:id", adminController.DeleteResearchPaper)

	admin.GET("/reports", adminController.GetAllReports)
	admin.PUT("/reports/:id/status", adminController.UpdateReportStatus)
}
