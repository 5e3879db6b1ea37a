package routes

import (
	"github.com/gin-gonic/gin"

	"explore-simeulue-be/controllers"
	"explore-simeulue-be/middlewares"
)

// WisataRoutes sets up the destination catalog routes
func WisataRoutes(r *gin.Engine, ctrl *controllers.WisataController) {
	wisata := r.Group("/api/wisata", middlewares.AuthMiddleware())
	{
		wisata.GET("", ctrl.List)
		wisata.GET("/:id", ctrl.Get)
		wisata.POST("", ctrl.Create)
		wisata.PUT("/:id", ctrl.Update)
		wisata.PATCH("/:id/status", ctrl.SetOpen)
		wisata.DELETE("/:id", ctrl.Delete)
	}
}
