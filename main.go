package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"portfolio-backend/config"
	"portfolio-backend/db"
	_ "portfolio-backend/docs"
	"portfolio-backend/handlers/contacts"
	"portfolio-backend/handlers/health"
	"portfolio-backend/mailer"
	"portfolio-backend/repository"
	"portfolio-backend/routes"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

// @title Portfolio API
// @version 1.0
// @description Contact form API for the portfolio website
// @host localhost:8080
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		utils.LogError(err, "Invalid configuration")
		os.Exit(1)
	}

	if err := db.Init(cfg.DBUrl); err != nil {
		utils.LogError(err, "Database initialization failed")
		os.Exit(1)
	}

	mail := mailer.New(cfg.SMTP)
	emailReady := false
	if mail.Configured() {
		if err := mail.Verify(); err != nil {
			utils.LogError(err, "Mail server verification failed")
		} else {
			emailReady = true
			utils.LogSuccess("Mail server is ready")
		}
	} else {
		utils.LogInfo("Email configuration not found. Email notifications disabled.")
	}

	contactRepo := repository.NewContactRepository(db.DB)
	contactService := services.NewContactService(contactRepo, mail, cfg.SMTP.To)

	r := routes.SetupRouter(contacts.New(contactService), health.New(emailReady))

	utils.LogInfo("Server listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Server startup failed")
		os.Exit(1)
	}
}
