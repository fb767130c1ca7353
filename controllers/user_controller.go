package controllers

import (
	"net/http"

	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdminUserListResponse
// @Router /admin/users [get]
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AdminUserListResponse{Users: users})
}

// @Summary Change user role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.UpdateRoleRequest true "New role"
// @Success 200 {object} models.AdminUserResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [patch]
func (ctrl *UserController) UpdateRole(c *gin.Context) {
	req := bindJSON[models.UpdateRoleRequest](c)

	user, err := ctrl.Users.SetRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AdminUserResponse{User: *user})
}
