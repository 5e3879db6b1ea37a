package routes

import (
	"github.com/gin-gonic/gin"

	"explore-simeulue-be/controllers"
	"explore-simeulue-be/middlewares"
)

// AdminRoutes sets up the remaining dashboard routes: feedback moderation,
// user management, image upload and the landing-page counters
func AdminRoutes(
	r *gin.Engine,
	feedback *controllers.FeedbackController,
	users *controllers.UserController,
	upload *controllers.UploadController,
	dashboard *controllers.DashboardController,
) {
	api := r.Group("/api", middlewares.AuthMiddleware())
	{
		api.GET("/feedback", feedback.List)
		api.POST("/feedback", feedback.Create)
		api.PUT("/feedback/:id", feedback.Update)
		api.DELETE("/feedback/:id", feedback.Delete)

		api.GET("/users", users.List)
		api.POST("/users", users.Create)
		api.PUT("/users/:id", users.Update)
		api.DELETE("/users/:id", users.Delete)

		api.POST("/upload/image", upload.UploadImage)

		api.GET("/dashboard/stats", dashboard.Stats)
	}
}
