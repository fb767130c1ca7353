package controllers

import (
	"net/http"

	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Contacts *services.ContactService
}

// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 200 {object} models.ContactResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	req := bindJSON[models.ContactRequest](c)

	msg, err := ctrl.Contacts.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ContactResponse{OK: true, Contact: *msg})
}

// @Summary List contact messages
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ContactListResponse
// @Router /admin/contacts [get]
func (ctrl *ContactController) List(c *gin.Context) {
	contacts, err := ctrl.Contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ContactListResponse{Contacts: contacts})
}

// @Summary Delete contact message
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/contacts/{id} [delete]
func (ctrl *ContactController) Delete(c *gin.Context) {
	if err := ctrl.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
