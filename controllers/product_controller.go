package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

// @Summary List products
// @Description All products ordered by id
// @Tags Products
// @Produce json
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	products, err := ctrl.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductListResponse{Products: products})
}

// @Summary Get product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *ProductController) GetBySlug(c *gin.Context) {
	product, err := ctrl.Products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductResponse{Product: *product})
}

// @Summary List products (admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProductListResponse
// @Router /admin/products [get]
func (ctrl *ProductController) AdminList(c *gin.Context) {
	products, err := ctrl.Products.ListFresh(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductListResponse{Products: products})
}

// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateProductRequest true "Product"
// @Success 200 {object} models.ProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	req := bindJSON[models.CreateProductRequest](c)

	product, err := ctrl.Products.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductResponse{Product: *product})
}

// @Summary Update product
// @Description Only the fields present in the body are changed
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	req := bindJSON[models.UpdateProductRequest](c)

	product, err := ctrl.Products.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProductResponse{Product: *product})
}

// @Summary Delete product
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := ctrl.Products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// @Summary Delete all products
// @Description Removes every product and the stored images they reference
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DeleteAllResponse
// @Router /admin/products [delete]
func (ctrl *ProductController) DeleteAll(c *gin.Context) {
	deleted, err := ctrl.Products.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteAllResponse{OK: true, Deleted: deleted})
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid product id"})
		return 0, false
	}
	return id, true
}
