package controller

import (
	"course_dash_backend/internal/service"
	"course_dash_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	UploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{UploadService: uploadService}
}

// Upload godoc
// @Summary Host a file for the dashboard upload widget
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param endpoint path string true "lessonVideo, courseImage or courseAttachment"
// @Param file formData file true "file"
// @Success 200 {object} service.UploadResult
// @Failure 400 {string} string "invalid upload"
// @Failure 401 {string} string "Unauthorized"
// @Failure 413 {string} string "File too large"
// @Router /api/uploads/{endpoint} [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	if _, ok := currentUser(ctx); !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	res, err := c.UploadService.Upload(ctx.Request.Context(), ctx.Param("endpoint"), file)
	if err != nil {
		respondError(ctx, "[UPLOAD]", err)
		return
	}
	util.Success(ctx, res)
}
