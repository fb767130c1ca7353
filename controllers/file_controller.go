package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FileController struct {
	Files *services.FileService
}

// @Summary Upload product image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (max 5MB)"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/upload [post]
func (ctrl *FileController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Missing file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	url, err := ctrl.Files.UploadImage(c.Request.Context(), services.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, requestBaseURL(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{URL: url})
}

// @Summary Download stored file
// @Tags Files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /files/{id} [get]
func (ctrl *FileController) Serve(c *gin.Context) {
	file, reader, err := ctrl.Files.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(file.Filename)

	c.DataFromReader(http.StatusOK, file.Length, contentType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`inline; filename="%s"`, filename),
		"Cache-Control":       "public, max-age=31536000, immutable",
	})
	if len(c.Errors) > 0 {
		log.Warn().Str("file_id", file.ID).Str("errors", c.Errors.String()).Msg("file stream interrupted")
	}
}
