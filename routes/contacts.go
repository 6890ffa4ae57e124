package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/handlers/contacts"
)

func ContactsRoutes(r *gin.Engine, h *contacts.Handler) {
	contact := r.Group("/api/contact")
	{
		contact.POST("", h.CreateContact)
		contact.GET("", h.GetAllContacts)
		contact.GET("/:id", h.GetContactByID)
		contact.PATCH("/:id/status", h.UpdateContactStatus)
	}
}
