package routes

import (
	"github.com/gin-gonic/gin"

	"explore-simeulue-be/controllers"
	"explore-simeulue-be/middlewares"
)

// AuthRoutes sets up the admin authentication routes
func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middlewares.LoginRateLimiter(10), ctrl.Login)
		auth.POST("/logout", ctrl.Logout)
		auth.GET("/me", middlewares.AuthMiddleware(), ctrl.Me)
	}
}
