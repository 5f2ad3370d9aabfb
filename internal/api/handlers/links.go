package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poopdl/poopdl/internal/models"
	"github.com/poopdl/poopdl/internal/utils"
)

// LinkResolver runs the three-step token exchange for a single file id.
type LinkResolver interface {
	GetLink(ctx context.Context, domain, id string) string
}

type LinkHandler struct {
	resolver LinkResolver
}

func NewLinkHandler(resolver LinkResolver) *LinkHandler {
	return &LinkHandler{resolver: resolver}
}

// GenerateLink godoc
// @Summary Resolve a file id into a direct link
// @Description Perform the token exchange that turns a (domain, id) pair into a direct download/streaming URL
// @Tags links
// @Accept json
// @Produce json
// @Param request body models.GenerateLinkRequest true "Domain and file id"
// @Success 200 {object} models.GenerateLinkResponse
// @Router /generate_link [post]
func (h *LinkHandler) GenerateLink(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.GenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn(ctx, "Request did not contain valid JSON", utils.Fields{"error": err.Error()})
		c.JSON(http.StatusOK, models.GenerateLinkResponse{
			Status:  "failed",
			Message: "Request must be valid JSON",
			Link:    "",
		})
		return
	}

	if req.Domain == "" || req.ID == "" {
		utils.LogWarn(ctx, "Missing domain or id parameter in request")
		c.JSON(http.StatusOK, models.GenerateLinkResponse{
			Status:  "failed",
			Message: "invalid params",
			Link:    "",
		})
		return
	}

	utils.LogInfo(ctx, "Processing link request", utils.Fields{"domain": req.Domain, "id": req.ID})
	link := h.resolver.GetLink(ctx, req.Domain, req.ID)

	if link == "" {
		utils.LogWarn(ctx, "No link found", utils.Fields{"domain": req.Domain, "id": req.ID})
		c.JSON(http.StatusOK, models.GenerateLinkResponse{
			Status:  "failed",
			Message: "link not found",
			Link:    "",
		})
		return
	}

	c.JSON(http.StatusOK, models.GenerateLinkResponse{
		Status:  "success",
		Message: "",
		Link:    link,
	})
}
