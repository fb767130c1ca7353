package controllers

import (
	"net/http"

	"ansh-apparels/middleware"
	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
}

// @Summary Get cart
// @Description Returns the cart of the session user, creating it on first access
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	cart, err := ctrl.Carts.Get(c.Request.Context(), c.GetString(middleware.ContextUserID))
	ctrl.respond(c, cart, err)
}

// @Summary Add item to cart
// @Description Quantities of an existing slug and size are summed
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	req := bindJSON[models.AddCartItemRequest](c)
	cart, err := ctrl.Carts.AddItem(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	ctrl.respond(c, cart, err)
}

// @Summary Update item quantity
// @Description Quantity 0 or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Line and quantity"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	req := bindJSON[models.UpdateCartItemRequest](c)
	cart, err := ctrl.Carts.UpdateQuantity(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	ctrl.respond(c, cart, err)
}

// @Summary Remove item
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Line"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	req := bindJSON[models.RemoveCartItemRequest](c)
	cart, err := ctrl.Carts.RemoveItem(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	ctrl.respond(c, cart, err)
}

// @Summary Merge guest cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.MergeCartRequest true "Guest cart items"
// @Success 200 {object} models.CartResponse
// @Router /cart/merge [post]
func (ctrl *CartController) Merge(c *gin.Context) {
	req := bindJSON[models.MergeCartRequest](c)
	cart, err := ctrl.Carts.Merge(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Items)
	ctrl.respond(c, cart, err)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.OKResponse
// @Router /cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	if err := ctrl.Carts.Clear(c.Request.Context(), c.GetString(middleware.ContextUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

func (ctrl *CartController) respond(c *gin.Context, cart *models.Cart, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CartResponse{Cart: *cart})
}
