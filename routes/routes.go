package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-backend/handlers/contacts"
	"portfolio-backend/handlers/health"
	"portfolio-backend/utils"
)

func SetupRouter(contactsHandler *contacts.Handler, healthHandler *health.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())

	// The portfolio SPA calls the API from another origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	HealthRoutes(r, healthHandler)
	ContactsRoutes(r, contactsHandler)

	return r
}
