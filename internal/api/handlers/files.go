package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poopdl/poopdl/internal/models"
	"github.com/poopdl/poopdl/internal/utils"
)

// FileResolver runs the file-listing resolution pipeline.
type FileResolver interface {
	GetAllFiles(ctx context.Context, url string) []models.FileItem
}

type FileHandler struct {
	resolver FileResolver
}

func NewFileHandler(resolver FileResolver) *FileHandler {
	return &FileHandler{resolver: resolver}
}

// GenerateFile godoc
// @Summary Resolve a share URL into file metadata
// @Description Resolve a PoopHD share URL into structured file information for every file it references
// @Tags files
// @Accept json
// @Produce json
// @Param request body models.GenerateFileRequest true "Share URL to resolve"
// @Success 200 {object} models.GenerateFileResponse
// @Router /generate_file [post]
func (h *FileHandler) GenerateFile(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.GenerateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn(ctx, "Request did not contain valid JSON", utils.Fields{"error": err.Error()})
		c.JSON(http.StatusOK, models.GenerateFileResponse{
			Status:  "failed",
			Message: "Request must be valid JSON",
			File:    []models.FileItem{},
		})
		return
	}

	if req.URL == "" {
		utils.LogWarn(ctx, "Missing url parameter in request")
		c.JSON(http.StatusOK, models.GenerateFileResponse{
			Status:  "failed",
			Message: "invalid params",
			File:    []models.FileItem{},
		})
		return
	}

	utils.LogInfo(ctx, "Processing URL", utils.Fields{"url": req.URL})
	files := h.resolver.GetAllFiles(ctx, req.URL)

	if len(files) == 0 {
		utils.LogWarn(ctx, "No files found", utils.Fields{"url": req.URL})
		c.JSON(http.StatusOK, models.GenerateFileResponse{
			Status:  "failed",
			Message: "file not found",
			File:    []models.FileItem{},
		})
		return
	}

	utils.LogInfo(ctx, "Successfully processed URL", utils.Fields{
		"url":   req.URL,
		"count": len(files),
	})
	c.JSON(http.StatusOK, models.GenerateFileResponse{
		Status:  "success",
		Message: "",
		File:    files,
	})
}
