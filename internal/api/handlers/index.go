package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poopdl/poopdl/internal/models"
)

// APIVersion is reported by the index endpoint.
const APIVersion = "1.1"

type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Index godoc
// @Summary API documentation endpoint
// @Description Describe the service and its operations
// @Tags info
// @Produce json
// @Success 200 {object} models.IndexResponse
// @Router / [get]
func (h *IndexHandler) Index(c *gin.Context) {
	root := requestRoot(c)

	response := models.IndexResponse{
		Status:  "success",
		Version: APIVersion,
		Service: []models.ServiceEndpoint{
			{
				Method:   "POST",
				Endpoint: "generate_file",
				URL:      root + "/generate_file",
				Params:   []string{"url"},
				Response: []string{"status", "message", "file"},
			},
			{
				Method:   "POST",
				Endpoint: "generate_link",
				URL:      root + "/generate_link",
				Params:   []string{"domain", "id"},
				Response: []string{"status", "message", "link"},
			},
		},
		Message: "PoopDL API - PoopHD Video Downloader & Streaming",
	}

	c.JSON(http.StatusOK, response)
}

func requestRoot(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
