package controllers

import (
	"net/http"

	"ansh-apparels/libs"
	"ansh-apparels/middleware"
	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	Auth       *services.AuthService
	Production bool
}

// @Summary Sign up
// @Description Create an account. The response always reports a regular user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup data"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	req := bindJSON[models.SignupRequest](c)

	user, err := ctrl.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{User: *user})
}

// @Summary Log in
// @Description Sets the session cookie and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	req := bindJSON[models.LoginRequest](c)

	result, err := ctrl.Auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	libs.SetSessionCookie(c, result.SessionID, ctrl.Production)
	c.JSON(http.StatusOK, models.LoginResponse{User: result.User, Token: result.Token})
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, models.ErrNotLoggedIn)
		return
	}
	c.JSON(http.StatusOK, models.UserResponse{User: user.Public()})
}

// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} models.OKResponse
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.Auth.Logout(c.Request.Context(), libs.SessionIDFromRequest(c)); err != nil {
		log.Warn().Err(err).Msg("failed to delete session on logout")
	}

	libs.ClearSessionCookie(c, ctrl.Production)
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// @Summary Verify admin access
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OKResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/verify [get]
func (ctrl *AuthController) VerifyAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
