package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"explore-simeulue-be/config"
	"explore-simeulue-be/controllers"
	"explore-simeulue-be/routes"
	"explore-simeulue-be/services"
	"explore-simeulue-be/storage"
	"explore-simeulue-be/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	config.ConnectRedis()

	blob, err := storage.NewMinIOClient()
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	docStore := store.NewMongoStore(db)
	dialog := services.APIDialog{}

	pengajuanSvc := services.NewPengajuanService(docStore, dialog)
	wisataSvc := services.NewWisataService(docStore, dialog)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{os.Getenv("FRONTEND_ORIGIN")}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r, controllers.NewAuthController(docStore))
	routes.PengajuanRoutes(r, controllers.NewPengajuanController(pengajuanSvc))
	routes.WisataRoutes(r, controllers.NewWisataController(wisataSvc))
	routes.AdminRoutes(r,
		controllers.NewFeedbackController(docStore),
		controllers.NewUserController(docStore),
		controllers.NewUploadController(blob),
		controllers.NewDashboardController(docStore),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
