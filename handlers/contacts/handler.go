package contacts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/models"
	"portfolio-backend/repository"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

type Handler struct {
	service *services.ContactService
}

func New(service *services.ContactService) *Handler {
	return &Handler{service: service}
}

// @Summary Submit a contact request
// @Description Submit a new contact form entry and trigger the email notifications
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response "Field validation errors"
// @Failure 500 {object} utils.Response
// @Router /api/contact [post]
func (h *Handler) CreateContact(c *gin.Context) {
	var input models.ContactCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.service.Submit(input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var validationErrs *services.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.SendFieldErrors(c, validationErrs.Fields)
			return
		}
		utils.LogError(err, "Contact form submission failed")
		utils.SendError(c, http.StatusInternalServerError, "Failed to submit contact form. Please try again later.")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Thank you for your message! I will get back to you soon.", summary)
}

// @Summary List contact requests
// @Description Paginated list of submissions, most recent first
// @Tags contacts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/contact [get]
func (h *Handler) GetAllContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, pagination, err := h.service.List(page, limit)
	if err != nil {
		utils.LogError(err, "Error fetching contacts")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	utils.SendPage(c, items, pagination)
}

// @Summary Get a contact request
// @Description Full submission record, audit fields included
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/contact/{id} [get]
func (h *Handler) GetContactByID(c *gin.Context) {
	contact, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			utils.SendError(c, http.StatusNotFound, "Contact not found")
			return
		}
		utils.LogError(err, "Error fetching contact")
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch contact")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", contact)
}

// @Summary Update the status of a contact request
// @Description Set the status to new, read or replied
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param status body models.ContactStatusUpdate true "New status"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/contact/{id}/status [patch]
func (h *Handler) UpdateContactStatus(c *gin.Context) {
	var input models.ContactStatusUpdate

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	contact, err := h.service.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		var validationErrs *services.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			utils.SendError(c, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, repository.ErrContactNotFound):
			utils.SendError(c, http.StatusNotFound, "Contact not found")
		default:
			utils.LogError(err, "Error updating contact status")
			utils.SendError(c, http.StatusInternalServerError, "Failed to update contact status")
		}
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", contact)
}
