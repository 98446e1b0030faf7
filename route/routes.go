package route

import (
	"github.com/gin-gonic/gin"

	"eventsnap/controller"
)

// Register mounts the API surface under /api.
func Register(router *gin.Engine, photos *controller.PhotoController, status *controller.StatusController) {
	api := router.Group("/api")

	api.GET("/", status.Root)
	api.POST("/status", status.Create)
	api.GET("/status", status.List)

	api.POST("/photos/upload", photos.Upload)
	api.GET("/photos", photos.List)
	api.GET("/photos/file/:filename", photos.GetFile)
	api.GET("/photos/thumbnail/:filename", photos.GetThumbnail)
	api.DELETE("/photos/:photo_id", photos.Delete)
}
