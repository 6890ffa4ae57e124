package health

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/utils"
)

type Handler struct {
	emailReady bool
}

// New builds the health handler. emailReady is the result of the mail
// transport verification done at startup.
func New(emailReady bool) *Handler {
	return &Handler{emailReady: emailReady}
}

// @Summary Health check
// @Description Reports service liveness and mail transport readiness
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	utils.SendSuccess(c, 200, "Service is up", gin.H{
		"status":     "ok",
		"emailReady": h.emailReady,
	})
}
