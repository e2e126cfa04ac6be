package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/assemble-platform/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	profile := protected.Group("/profile")
	{
		profile.POST("/avatar", uploadController.GetAvatarUploadURL)
		profile.POST("/avatar/confirm", uploadController.ConfirmAvatarUpload)
	}
}
