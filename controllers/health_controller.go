package controllers

import (
	"net/http"

	"ansh-apparels/docs"
	"ansh-apparels/models"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

const serviceName = "ansh-apparels-backend"

type HealthController struct{}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{OK: true, Service: serviceName})
}

// @Summary API description
// @Description Machine-readable description of this API
// @Tags Health
// @Produce json
// @Success 200 {object} object
// @Router /docs/openapi.json [get]
func (ctrl *HealthController) OpenAPI(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
