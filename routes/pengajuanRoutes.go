package routes

import (
	"github.com/gin-gonic/gin"

	"explore-simeulue-be/controllers"
	"explore-simeulue-be/middlewares"
)

// PengajuanRoutes sets up the submission review routes
func PengajuanRoutes(r *gin.Engine, ctrl *controllers.PengajuanController) {
	pengajuan := r.Group("/api/pengajuan", middlewares.AuthMiddleware())
	{
		pengajuan.GET("", ctrl.List)
		pengajuan.POST("/:id/approve", ctrl.Approve)
		pengajuan.POST("/:id/reject", ctrl.Reject)
		pengajuan.DELETE("/:id", ctrl.Delete)
	}
}
